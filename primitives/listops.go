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

func registerListOps(p *pool.Pool, global *pool.Value) {
	define(p, global, "car", func(args *pool.Value) (*pool.Value, error) {
		v := pool.ToSlice(args)[0]
		if v.Kind != pool.KindPair {
			return p.NewError("car: not a pair: %s", pool.Print(v)), nil
		}
		return v.Car(), nil
	})

	define(p, global, "cdr", func(args *pool.Value) (*pool.Value, error) {
		v := pool.ToSlice(args)[0]
		if v.Kind != pool.KindPair {
			return p.NewError("cdr: not a pair: %s", pool.Print(v)), nil
		}
		return v.Cdr(), nil
	})

	define(p, global, "cons", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		return p.NewPair(items[0], items[1]), nil
	})

	define(p, global, "list", func(args *pool.Value) (*pool.Value, error) {
		return args, nil
	})

	define(p, global, "set-car!", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		pair, v := items[0], items[1]
		if pair.Kind != pool.KindPair {
			return p.NewError("set-car!: not a pair: %s", pool.Print(pair)), nil
		}
		pair.SetCar(v)
		return pair, nil
	})

	define(p, global, "set-cdr!", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		pair, v := items[0], items[1]
		if pair.Kind != pool.KindPair {
			return p.NewError("set-cdr!: not a pair: %s", pool.Print(pair)), nil
		}
		pair.SetCdr(v)
		return pair, nil
	})
}
