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
Package primitives supplies every host-implemented operation: the
Scheme-visible procedures a program can call by name (spec §4.7's
arithmetic, comparison, list, predicate, I/O, runtime, and compilation
sets) plus the internal ops the compiler package emits calls to
(lookup-variable-value, make-compiled-procedure, apply-primitive-procedure,
and so on) that no Scheme program names directly.

Register binds only the internal ops on a Machine (via BindOp), and adds
the Scheme-visible procedures as primitive procedures in a global
environment frame, so that compiled variable references resolve to them
the same way a user-defined procedure would; those procedures are not
machine ops.
*/
package primitives
