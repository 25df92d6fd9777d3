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

/*
Package machine loads decoded instructions (see package code) into a
runnable register machine and executes them.

A Machine owns its own register, label, and op tables plus a constant
pool, all rooted in the backing pool.Pool so that a GC pass between runs
never reclaims anything the machine still needs. Host operations are
bound by name with BindOp; the machine binds none itself. The primitives
package binds the ops the compiler's code calls (lookup-variable-value,
apply-primitive-procedure, and so on), while Scheme-visible procedures
such as the arithmetic primitives are Primitive Values in the global
environment, reached through apply-primitive-procedure.
*/
package machine
