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

func numbers(args *pool.Value) ([]float64, error) {
	items := pool.ToSlice(args)
	out := make([]float64, len(items))
	for i, v := range items {
		if v.Kind != pool.KindNumber {
			return nil, errNotANumber
		}
		out[i] = v.Number()
	}
	return out, nil
}

func registerArithmetic(p *pool.Pool, global *pool.Value) {
	define(p, global, "+", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		sum := 0.0
		for _, n := range ns {
			sum += n
		}
		return p.NewNumber(sum), nil
	})

	define(p, global, "-", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		if len(ns) == 0 {
			return p.NewError("-: needs at least one argument"), nil
		}
		if len(ns) == 1 {
			return p.NewNumber(-ns[0]), nil
		}
		result := ns[0]
		for _, n := range ns[1:] {
			result -= n
		}
		return p.NewNumber(result), nil
	})

	define(p, global, "*", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		product := 1.0
		for _, n := range ns {
			product *= n
		}
		return p.NewNumber(product), nil
	})

	define(p, global, "/", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		if len(ns) == 0 {
			return p.NewError("/: needs at least one argument"), nil
		}
		if len(ns) == 1 {
			if ns[0] == 0 {
				return p.NewError("division by zero"), nil
			}
			return p.NewNumber(1 / ns[0]), nil
		}
		result := ns[0]
		for _, n := range ns[1:] {
			if n == 0 {
				return p.NewError("division by zero"), nil
			}
			result /= n
		}
		return p.NewNumber(result), nil
	})

	define(p, global, "remainder", unaryBinaryFloat(p, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return math.Mod(a, b), nil
	}))

	define(p, global, "expt", binaryFloat(p, math.Pow))
	define(p, global, "min", variadicFold(p, math.Min))
	define(p, global, "max", variadicFold(p, math.Max))
	define(p, global, "abs", unaryFloat(p, math.Abs))
	define(p, global, "exp", unaryFloat(p, math.Exp))
	define(p, global, "log", unaryFloat(p, math.Log))
	define(p, global, "sin", unaryFloat(p, math.Sin))
	define(p, global, "cos", unaryFloat(p, math.Cos))
	define(p, global, "tan", unaryFloat(p, math.Tan))
	define(p, global, "atan", unaryFloat(p, math.Atan))
	define(p, global, "atan2", binaryFloat(p, math.Atan2))
	define(p, global, "round", unaryFloat(p, math.Round))
	define(p, global, "floor", unaryFloat(p, math.Floor))
	define(p, global, "ceiling", unaryFloat(p, math.Ceil))
}

func unaryFloat(p *pool.Pool, f func(float64) float64) pool.PrimitiveFunc {
	return func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 1 {
			return p.NewError("expected exactly one number"), nil
		}
		return p.NewNumber(f(ns[0])), nil
	}
}

func binaryFloat(p *pool.Pool, f func(float64, float64) float64) pool.PrimitiveFunc {
	return func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 2 {
			return p.NewError("expected exactly two numbers"), nil
		}
		return p.NewNumber(f(ns[0], ns[1])), nil
	}
}

func unaryBinaryFloat(p *pool.Pool, f func(float64, float64) (float64, error)) pool.PrimitiveFunc {
	return func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 2 {
			return p.NewError("expected exactly two numbers"), nil
		}
		result, err := f(ns[0], ns[1])
		if err != nil {
			return p.NewError("%v", err), nil
		}
		return p.NewNumber(result), nil
	}
}

func variadicFold(p *pool.Pool, f func(float64, float64) float64) pool.PrimitiveFunc {
	return func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) == 0 {
			return p.NewError("expected at least one number"), nil
		}
		result := ns[0]
		for _, n := range ns[1:] {
			result = f(result, n)
		}
		return p.NewNumber(result), nil
	}
}
