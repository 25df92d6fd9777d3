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
	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/env"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

// errArity reports a lambda call whose argument count doesn't match its
// parameter list.
var errArity = errors.New("wrong number of arguments")

// bindInternal registers the ops the compiler package emits calls to but
// that no Scheme program names directly (spec §4.6's calling convention).
// They are never added to the global environment as procedures.
func bindInternal(m *machine.Machine, p *pool.Pool) {
	m.BindOp("lookup-variable-value", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		name, environment := items[0], items[1]
		record := env.Lookup(environment, name.Symbol(), true)
		if record == nil {
			return p.NewError("unbound variable: %s", name.Symbol()), nil
		}
		return env.Value(record), nil
	})

	m.BindOp("set-variable-value!", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		name, value, environment := items[0], items[1], items[2]
		if !env.Set(environment, name.Symbol(), value) {
			return p.NewError("unbound variable: %s", name.Symbol()), nil
		}
		return value, nil
	})

	m.BindOp("define-variable!", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		name, value, environment := items[0], items[1], items[2]
		env.Define(p, environment, name.Symbol(), value)
		return value, nil
	})

	m.BindOp("make-compiled-procedure", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		entry, environment := items[0], items[1]
		return p.NewCompiled(entry, environment), nil
	})

	m.BindOp("compiled-environment", func(args *pool.Value) (*pool.Value, error) {
		proc := pool.ToSlice(args)[0]
		return proc.Closure(), nil
	})

	m.BindOp("compiled-entry", func(args *pool.Value) (*pool.Value, error) {
		proc := pool.ToSlice(args)[0]
		return proc.Entry(), nil
	})

	m.BindOp("extend-environment", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		params, values, parent := items[0], items[1], items[2]
		frame := env.New(p, parent)
		if err := bindParams(p, frame, params, values); err != nil {
			return p.NewError("%v", err), nil
		}
		return frame, nil
	})

	m.BindOp("apply-primitive-procedure", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		proc, callArgs := items[0], items[1]
		return proc.PrimitiveFunc()(callArgs)
	})

	m.BindOp("primitive-procedure?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].Kind == pool.KindPrimitive), nil
	})

	m.BindOp("compiled-procedure?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].Kind == pool.KindCompiled), nil
	})

	m.BindOp("signal-error", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		format := items[0].Str()
		return syntax.MakeError(p, format, p.FromSlice(items[1:])), nil
	})

	m.BindOp("make-empty-arglist", func(args *pool.Value) (*pool.Value, error) {
		return p.Nil(), nil
	})

	m.BindOp("adjoin-arg", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		arg, argList := items[0], items[1]
		return p.Append(argList, p.NewPair(arg, p.Nil())), nil
	})

	m.BindOp("false?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(!pool.ToSlice(args)[0].IsTruthy()), nil
	})

	m.BindOp("true?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].IsTruthy()), nil
	})
}

// bindParams binds a lambda's parameter list to argl's values in a fresh
// frame: params may be a proper list (fixed arity), an improper list
// `(a b . rest)` (a trailing variadic catch-all), or a bare symbol (a
// single catch-all parameter bound to the whole argument list).
func bindParams(p *pool.Pool, frame, params, values *pool.Value) error {
	for {
		if params.IsNil() {
			if !values.IsNil() {
				return errArity
			}
			return nil
		}
		if params.Kind == pool.KindSymbol {
			env.Define(p, frame, params.Symbol(), values)
			return nil
		}
		if values.IsNil() {
			return errArity
		}
		env.Define(p, frame, params.Car().Symbol(), values.Car())
		params, values = params.Cdr(), values.Cdr()
	}
}
