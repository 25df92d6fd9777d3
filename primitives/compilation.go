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
	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/compiler"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/pool"
)

// registerCompilation binds compile and code: compile translates an
// expression to its instruction sequence without running it (introspection
// of §4.6's compiler); code takes a list of instruction s-expressions
// (§4.4) — typically compile's own output, possibly hand-edited — and
// splices them onto the running machine's code chain, mirroring the
// teacher's asm-then-load workflow (`asm` package + `cmd/retro -with`).
func registerCompilation(p *pool.Pool, global *pool.Value, m *machine.Machine, c *compiler.Compiler) {
	define(p, global, "compile", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		if len(items) == 0 {
			return p.NewError("compile: expected an expression"), nil
		}
		target, linkage := "val", compiler.LinkageNext
		if len(items) > 1 {
			target = items[1].Symbol()
		}
		if len(items) > 2 {
			linkage = items[2].Symbol()
		}
		seq, err := c.Compile(p, items[0], target, linkage)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		lines := make([]*pool.Value, len(seq.Instructions))
		for i, inst := range seq.Instructions {
			lines[i] = inst.ToSource(p)
		}
		return p.FromSlice(lines), nil
	})

	define(p, global, "code", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		instructions := make([]code.Instruction, 0, len(items))
		for _, line := range items {
			inst, err := code.FromSource(line)
			if err != nil {
				return p.NewError("%v", err), nil
			}
			instructions = append(instructions, inst)
		}
		if err := m.AppendAndJump(instructions); err != nil {
			return p.NewError("%v", err), nil
		}
		return p.NewInfo("loaded %d instructions", len(instructions)), nil
	})
}
