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

import (
	"math"

	"github.com/dn47h/schemevm/pool"
)

func isProperList(v *pool.Value) bool {
	for {
		if v.IsNil() {
			return true
		}
		if v.Kind != pool.KindPair {
			return false
		}
		v = v.Cdr()
	}
}

func registerPredicates(p *pool.Pool, global *pool.Value) {
	kindPredicate := func(k pool.Kind) pool.PrimitiveFunc {
		return func(args *pool.Value) (*pool.Value, error) {
			return p.NewBool(pool.ToSlice(args)[0].Kind == k), nil
		}
	}

	define(p, global, "number?", kindPredicate(pool.KindNumber))
	define(p, global, "symbol?", kindPredicate(pool.KindSymbol))
	define(p, global, "string?", kindPredicate(pool.KindString))
	define(p, global, "bool?", kindPredicate(pool.KindBool))
	define(p, global, "pair?", kindPredicate(pool.KindPair))

	define(p, global, "list?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(isProperList(pool.ToSlice(args)[0])), nil
	})

	define(p, global, "null?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].IsNil()), nil
	})

	define(p, global, "true?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].IsTruthy()), nil
	})

	define(p, global, "false?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(!pool.ToSlice(args)[0].IsTruthy()), nil
	})

	define(p, global, "equal?", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		return p.NewBool(pool.Equal(items[0], items[1])), nil
	})

	define(p, global, "eq?", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		return p.NewBool(items[0] == items[1]), nil
	})

	define(p, global, "even?", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 1 {
			return p.NewError("even?: expected one number"), nil
		}
		return p.NewBool(math.Mod(ns[0], 2) == 0), nil
	})

	define(p, global, "odd?", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 1 {
			return p.NewError("odd?: expected one number"), nil
		}
		return p.NewBool(math.Mod(ns[0], 2) != 0), nil
	})
}
