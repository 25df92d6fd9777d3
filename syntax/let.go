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

// IsLet reports `(let ((v1 e1) ...) body...)`.
func IsLet(exp *pool.Value) bool { return IsTaggedList(exp, "let") }

// CheckLet validates that every binding is a two-element `(name value)`
// pair and that the bound name is a symbol.
func CheckLet(exp *pool.Value) error {
	if pool.Length(exp) < 3 {
		return malformed("let", exp)
	}
	for _, binding := range pool.ToSlice(exp.Cdr().Car()) {
		if pool.Length(binding) != 2 || binding.Car().Kind != pool.KindSymbol {
			return malformed("let binding", exp)
		}
	}
	return nil
}

// TransformLet desugars `(let ((v1 e1) ...) body...)` into the equivalent
// immediately-applied lambda `((lambda (v1 ...) body...) e1 ...)`.
func TransformLet(p *pool.Pool, exp *pool.Value) *pool.Value {
	bindings := pool.ToSlice(exp.Cdr().Car())
	body := exp.Cdr().Cdr()

	names := make([]*pool.Value, len(bindings))
	values := make([]*pool.Value, len(bindings))
	for i, b := range bindings {
		names[i] = b.Car()
		values[i] = b.Cdr().Car()
	}

	lambda := MakeLambda(p, p.FromSlice(names), body)
	return p.NewPair(lambda, p.FromSlice(values))
}
