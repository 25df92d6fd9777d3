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

package syntax

import "github.com/dn47h/schemevm/pool"

// IsApplication reports a procedure call `(f ...)` with any f. This must be
// checked last among the special forms, since every tagged list not
// recognized by an earlier IsX is, by elimination, an application.
func IsApplication(exp *pool.Value) bool {
	return exp != nil && exp.Kind == pool.KindPair
}

// Operator returns f from `(f x y z)`.
func Operator(compound *pool.Value) *pool.Value { return compound.Car() }

// Operands returns `(x y z)` from `(f x y z)`.
func Operands(compound *pool.Value) *pool.Value { return compound.Cdr() }

// HasNoOperands reports the empty operand list.
func HasNoOperands(operands *pool.Value) bool { return operands == nil || operands.IsNil() }

// IsLastOperand reports a one-element operand list.
func IsLastOperand(operands *pool.Value) bool {
	return operands.Cdr() == nil || operands.Cdr().IsNil()
}

// FirstOperand returns x from `(x y z)`.
func FirstOperand(operands *pool.Value) *pool.Value { return operands.Car() }

// RestOperands returns `(y z)` from `(x y z)`.
func RestOperands(operands *pool.Value) *pool.Value { return operands.Cdr() }

// MakeEmptyArglist returns the empty argument accumulator.
func MakeEmptyArglist(p *pool.Pool) *pool.Value { return p.Nil() }

// AdjoinArg appends arg to the end of argList, preserving order (spec
// §4.3's adjoin_arg: arguments accumulate left to right as they are
// evaluated).
func AdjoinArg(p *pool.Pool, arg, argList *pool.Value) *pool.Value {
	return p.Append(argList, p.NewPair(arg, p.Nil()))
}
