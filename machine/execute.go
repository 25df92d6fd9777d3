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

package machine

import (
	"fmt"

	"github.com/dn47h/schemevm/pool"
)

// Run writes inputs to their named registers, resets the stack, and
// executes from the code chain's head until the program counter goes nil,
// then returns the exported contents of outputRegister (spec §4.5).
func (m *Machine) Run(inputs map[string]*pool.Value) *pool.Value {
	for name, v := range inputs {
		m.WriteToRegister(name, v)
	}
	m.stack = m.stack[:0]
	m.pc = m.codeHead.Cdr()

	for m.pc != nil {
		if m.interruptRequested() {
			m.val.SetCar(m.pool.NewError("interrupted"))
			m.pc = nil
			break
		}
		m.step()
	}
	return m.ReadFromRegister(m.outputName)
}

// step decodes and executes the instruction at the current pc, advancing
// or jumping pc as appropriate. Any op call returning an Error Value halts
// the machine: it is written to the output register and pc is set to nil.
func (m *Machine) step() {
	decoded := m.pc.Car() // (tag . payload)
	t := tag(int(decoded.Car().Number()))
	payload := decoded.Cdr()

	m.traceHeader(t, payload)

	switch t {
	case tagAssignCopy:
		m.execAssignCopy(payload)
	case tagCall:
		m.execCall(payload)
	case tagBranch:
		m.execBranch(payload)
	case tagGoto:
		m.execGoto(payload)
	case tagSave:
		m.execSave(payload)
	case tagRestore:
		m.execRestore(payload)
	}
}

func (m *Machine) advance() { m.pc = m.pc.Cdr() }

func (m *Machine) execAssignCopy(payload *pool.Value) {
	dst, src := payload.Car(), payload.Cdr()
	dst.SetCar(resolveArg(src))
	m.advance()
}

func (m *Machine) callOp(opCell, args *pool.Value) *pool.Value {
	resolvedArgs := make([]*pool.Value, 0, pool.Length(args))
	for _, a := range pool.ToSlice(args) {
		resolvedArgs = append(resolvedArgs, resolveArg(a))
	}
	fn := opCell.Car()
	if fn == nil {
		return m.pool.NewError("undefined op %q", opCell.Cdr().Symbol())
	}
	result, err := fn.PrimitiveFunc()(m.pool.FromSlice(resolvedArgs))
	if err != nil {
		return m.pool.NewError("%s: %v", opCell.Cdr().Symbol(), err)
	}
	return result
}

func (m *Machine) execCall(payload *pool.Value) {
	dst := payload.Car() // nil for perform
	opCell := payload.Cdr().Car()
	args := payload.Cdr().Cdr()

	pc := m.pc
	result := m.callOp(opCell, args)
	if result != nil && result.Kind == pool.KindError {
		m.val.SetCar(result)
		m.pc = nil
		return
	}
	if dst != nil {
		dst.SetCar(result)
	}
	if m.pc == pc { // an op that jumped (AppendAndJump) keeps its new pc
		m.advance()
	}
}

func (m *Machine) execBranch(payload *pool.Value) {
	label := payload.Car()
	opCell := payload.Cdr().Car()
	args := payload.Cdr().Cdr()

	result := m.callOp(opCell, args)
	if result != nil && result.Kind == pool.KindError {
		m.val.SetCar(result)
		m.pc = nil
		return
	}
	if result.IsTruthy() {
		m.pc = label.Car()
	} else {
		m.advance()
	}
}

// execGoto jumps to a target resolved either statically (the decoded
// payload is the Label cell itself) or dynamically (the payload is a
// Register cell whose current contents is a Label Value, e.g. one
// captured by the "compiled-entry" op from a compiled procedure). Either
// way, the Label cell's Car is the resolved chain position (spec §4.5).
func (m *Machine) execGoto(payload *pool.Value) {
	target := resolveArg(payload)
	if target != nil && target.Kind == pool.KindLabel {
		m.pc = target.Car()
		return
	}
	m.pc = target
}

func (m *Machine) execSave(payload *pool.Value) {
	m.stack = append(m.stack, payload.Car())
	m.advance()
}

func (m *Machine) execRestore(payload *pool.Value) {
	if len(m.stack) == 0 {
		panic("machine: stack underflow on restore")
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	payload.SetCar(top)
	m.advance()
}

func (m *Machine) traceHeader(t tag, payload *pool.Value) {
	if m.TraceLevel == 0 || m.TraceOut == nil {
		return
	}
	fmt.Fprintf(m.TraceOut, "[trace] %s\n", tagName(t))
	if m.TraceLevel >= 2 {
		fmt.Fprintf(m.TraceOut, "        payload: %s\n", pool.Print(payload))
	}
}

func tagName(t tag) string {
	switch t {
	case tagAssignCopy:
		return "assign"
	case tagCall:
		return "call"
	case tagBranch:
		return "branch"
	case tagGoto:
		return "goto"
	case tagSave:
		return "save"
	case tagRestore:
		return "restore"
	default:
		return "unknown"
	}
}
