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

// Package syntax recognizes and deconstructs the special forms of the
// expression grammar (spec §4.3): for each form there is an IsX recognizer,
// a CheckX structural validator, and a set of accessors. Desugarings
// (TransformLet, TransformCond, TransformSequence) produce equivalent
// expressions for the compiler; this package never mutates an expression.
package syntax

import (
	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/pool"
)

// IsTaggedList reports whether exp is a pair whose car is the symbol tag.
func IsTaggedList(exp *pool.Value, tag string) bool {
	return exp != nil && exp.Kind == pool.KindPair &&
		exp.Car() != nil && exp.Car().Kind == pool.KindSymbol &&
		exp.Car().Symbol() == tag
}

// IsSelfEvaluating reports whether exp evaluates to itself: numbers,
// strings, bools, and the empty list.
func IsSelfEvaluating(exp *pool.Value) bool {
	return exp == nil || exp.IsNil() ||
		exp.Kind == pool.KindNumber || exp.Kind == pool.KindString || exp.Kind == pool.KindBool
}

// IsVariable reports whether exp is a bare symbol reference.
func IsVariable(exp *pool.Value) bool {
	return exp != nil && exp.Kind == pool.KindSymbol
}

// IsTrue reports whether exp is a truthy Value under the single fixed
// truthiness invariant (spec §8): only the literal false is falsy.
func IsTrue(exp *pool.Value) bool { return exp.IsTruthy() }

// IsFalse is the complement of IsTrue.
func IsFalse(exp *pool.Value) bool { return !exp.IsTruthy() }

func malformed(kind string, exp *pool.Value) error {
	return errors.Errorf("malformed %s: %s", kind, pool.Print(exp))
}
