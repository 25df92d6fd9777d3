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
	"io"

	"github.com/dn47h/schemevm/compiler"
	"github.com/dn47h/schemevm/env"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/pool"
)

// define binds name to a Primitive procedure in global's own frame.
func define(p *pool.Pool, global *pool.Value, name string, fn pool.PrimitiveFunc) {
	env.Define(p, global, name, p.NewPrimitive(name, fn))
}

// Register binds every internal machine op the compiler package emits
// calls to (lookup-variable-value and friends) onto m, and every
// Scheme-visible procedure of spec §4.7 into global as a Primitive
// procedure. out receives display/newline output.
func Register(p *pool.Pool, m *machine.Machine, c *compiler.Compiler, global *pool.Value, out io.Writer) {
	bindInternal(m, p)

	registerArithmetic(p, global)
	registerComparison(p, global)
	registerListOps(p, global)
	registerPredicates(p, global)
	registerIO(p, global, out)
	registerRuntime(p, global)
	registerCompilation(p, global, m, c)
}
