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

// IsQuoted reports `(quote ...)`.
func IsQuoted(exp *pool.Value) bool { return IsTaggedList(exp, "quote") }

// CheckQuoted validates `(quote x)`.
func CheckQuoted(exp *pool.Value) error {
	if pool.Length(exp) != 2 {
		return malformed("quote", exp)
	}
	return nil
}

// TextOfQuotation returns x from `(quote x)`.
func TextOfQuotation(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// IsAssignment reports `(set! ...)`.
func IsAssignment(exp *pool.Value) bool { return IsTaggedList(exp, "set!") }

// CheckAssignment validates `(set! name value)`.
func CheckAssignment(exp *pool.Value) error {
	if pool.Length(exp) != 3 || exp.Cdr().Car().Kind != pool.KindSymbol {
		return malformed("set!", exp)
	}
	return nil
}

// AssignmentVariable returns x from `(set! x 10)`.
func AssignmentVariable(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// AssignmentValue returns 10 from `(set! x 10)`.
func AssignmentValue(exp *pool.Value) *pool.Value { return exp.Cdr().Cdr().Car() }

// IsDefinition reports `(define ...)`.
func IsDefinition(exp *pool.Value) bool { return IsTaggedList(exp, "define") }

// CheckDefinition validates both `(define name value)` and
// `(define (name params...) body...)`.
func CheckDefinition(exp *pool.Value) error {
	if pool.Length(exp) < 3 {
		return malformed("define", exp)
	}
	target := exp.Cdr().Car()
	switch target.Kind {
	case pool.KindSymbol:
		if pool.Length(exp) != 3 {
			return malformed("define", exp)
		}
	case pool.KindPair:
		if target.Car() == nil || target.Car().Kind != pool.KindSymbol {
			return malformed("define", exp)
		}
	default:
		return malformed("define", exp)
	}
	return nil
}

// DefinitionVariable returns f from `(define f 10)` or
// `(define (f x y) (+ x y))`.
func DefinitionVariable(exp *pool.Value) *pool.Value {
	target := exp.Cdr().Car()
	if target.Kind == pool.KindSymbol {
		return target
	}
	return target.Car()
}

// DefinitionValue returns 10 from `(define f 10)`, or the desugared
// `(lambda (x y) (+ x y))` from `(define (f x y) (+ x y))`.
func DefinitionValue(p *pool.Pool, exp *pool.Value) *pool.Value {
	target := exp.Cdr().Car()
	if target.Kind == pool.KindSymbol {
		return exp.Cdr().Cdr().Car()
	}
	return MakeLambda(p, target.Cdr(), exp.Cdr().Cdr())
}

// IsIf reports `(if ...)`.
func IsIf(exp *pool.Value) bool { return IsTaggedList(exp, "if") }

// CheckIf validates `(if p c)` or `(if p c a)`.
func CheckIf(exp *pool.Value) error {
	n := pool.Length(exp)
	if n != 3 && n != 4 {
		return malformed("if", exp)
	}
	return nil
}

// IfPredicate returns x from `(if x y z)`.
func IfPredicate(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// IfConsequent returns y from `(if x y z)`.
func IfConsequent(exp *pool.Value) *pool.Value { return exp.Cdr().Cdr().Car() }

// IfAlternative returns z from `(if x y z)`, or the false literal if the
// alternative branch is absent.
func IfAlternative(p *pool.Pool, exp *pool.Value) *pool.Value {
	rest := exp.Cdr().Cdr().Cdr()
	if rest != nil && rest.Kind == pool.KindPair {
		return rest.Car()
	}
	return p.NewBool(false)
}

// MakeIf builds `(if predicate consequent alternative)`.
func MakeIf(p *pool.Pool, predicate, consequent, alternative *pool.Value) *pool.Value {
	return p.FromSlice([]*pool.Value{p.NewSymbol("if"), predicate, consequent, alternative})
}

// IsLambda reports `(lambda ...)`.
func IsLambda(exp *pool.Value) bool { return IsTaggedList(exp, "lambda") }

// CheckLambda validates `(lambda params body...)` with at least one body
// expression.
func CheckLambda(exp *pool.Value) error {
	if pool.Length(exp) < 3 {
		return malformed("lambda", exp)
	}
	return nil
}

// LambdaParameters returns `(x y)` from `(lambda (x y) (+ x y) x)`.
func LambdaParameters(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// LambdaBody returns `((+ x y) x)` from `(lambda (x y) (+ x y) x)`.
func LambdaBody(exp *pool.Value) *pool.Value { return exp.Cdr().Cdr() }

// MakeLambda builds `(lambda params body...)`.
func MakeLambda(p *pool.Pool, params, body *pool.Value) *pool.Value {
	return p.NewPair(p.NewSymbol("lambda"), p.NewPair(params, body))
}
