// This file is part of schemevm.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primitives

import "github.com/dn47h/schemevm/pool"

func registerComparison(p *pool.Pool, global *pool.Value) {
	define(p, global, "=", chain(p, func(a, b float64) bool { return a == b }))
	define(p, global, "<", chain(p, func(a, b float64) bool { return a < b }))
	define(p, global, "<=", chain(p, func(a, b float64) bool { return a <= b }))
	define(p, global, ">", chain(p, func(a, b float64) bool { return a > b }))
	define(p, global, ">=", chain(p, func(a, b float64) bool { return a >= b }))
}

// chain builds a variadic comparison primitive: true iff cmp holds between
// every consecutive pair of arguments, in order.
func chain(p *pool.Pool, cmp func(a, b float64) bool) pool.PrimitiveFunc {
	return func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		for i := 1; i < len(ns); i++ {
			if !cmp(ns[i-1], ns[i]) {
				return p.NewBool(false), nil
			}
		}
		return p.NewBool(true), nil
	}
}
