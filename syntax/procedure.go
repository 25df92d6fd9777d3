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

// IsPrimitiveProcedure reports a host-implemented procedure Value.
func IsPrimitiveProcedure(proc *pool.Value) bool {
	return proc != nil && proc.Kind == pool.KindPrimitive
}

// IsCompoundProcedure reports a Scheme-level lambda closure.
func IsCompoundProcedure(proc *pool.Value) bool {
	return proc != nil && proc.Kind == pool.KindCompound
}

// IsCompiledProcedure reports a procedure compiled to register-machine
// code with a captured environment (spec §4.6, the lambda compilation
// rule).
func IsCompiledProcedure(proc *pool.Value) bool {
	return proc != nil && proc.Kind == pool.KindCompiled
}

// ProcedureParameters returns a compound procedure's parameter list.
func ProcedureParameters(proc *pool.Value) *pool.Value { return proc.Params() }

// ProcedureBody returns a compound procedure's body sequence.
func ProcedureBody(proc *pool.Value) *pool.Value { return proc.Body() }

// ProcedureEnvironment returns a compound or compiled procedure's captured
// environment.
func ProcedureEnvironment(proc *pool.Value) *pool.Value { return proc.Closure() }

// MakeCompoundProcedure builds a Scheme-level closure value.
func MakeCompoundProcedure(p *pool.Pool, params, body, env *pool.Value) *pool.Value {
	return p.NewCompound(params, body, env)
}
