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

// IsEval reports `(eval exp)`. Compiled, this hands control to the loaded
// evaluator kernel's eval-dispatch entry point (spec §9).
func IsEval(exp *pool.Value) bool { return IsTaggedList(exp, "eval") }

// CheckEval validates `(eval exp)`.
func CheckEval(exp *pool.Value) error {
	if pool.Length(exp) != 2 {
		return malformed("eval", exp)
	}
	return nil
}

// EvalExpression returns exp from `(eval exp)`.
func EvalExpression(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// IsApply reports `(apply proc args)`.
func IsApply(exp *pool.Value) bool { return IsTaggedList(exp, "apply") }

// CheckApply validates `(apply proc args)`.
func CheckApply(exp *pool.Value) error {
	if pool.Length(exp) != 3 {
		return malformed("apply", exp)
	}
	return nil
}

// ApplyOperator returns proc from `(apply proc args)`.
func ApplyOperator(exp *pool.Value) *pool.Value { return exp.Cdr().Car() }

// ApplyArguments returns args from `(apply proc args)`.
func ApplyArguments(exp *pool.Value) *pool.Value { return exp.Cdr().Cdr().Car() }

// VerifyApplyArguments reports whether args, once evaluated, will be a
// proper list usable as an argument list: the syntactic shape is always
// accepted here, since the actual argument list is only known at eval time
// and validated there.
func VerifyApplyArguments(args *pool.Value) bool { return true }
