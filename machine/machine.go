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

// Package machine implements the register machine of spec §4.5: a program
// counter walking a chain of decoded instructions, a fixed set of named
// registers, a stack, and a table of host-bound operations. Loading and
// executing code never touches s-expression text directly; that boundary
// lives in the code and parser packages.
package machine

import (
	"io"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/pool"
)

// tag discriminates the decoded instruction payloads stored in the code
// chain's Instruction cells. Unlike code.Kind, assign-call and perform
// share a tag (perform's destination register cell is nil), and label
// declarations have no tag because they never enter the code chain,
// matching the machine's execution model in spec §4.5.
type tag int

const (
	tagAssignCopy tag = iota
	tagCall              // assign-call (dst != nil) or perform (dst == nil)
	tagBranch
	tagGoto
	tagSave
	tagRestore
)

// Machine is a loaded, runnable instance of the register machine. The zero
// value is not usable; construct with New.
type Machine struct {
	pool *pool.Pool
	root *pool.Value

	registersHead *pool.Value // sentinel; cdr is the growing list of Register cells
	labelsHead    *pool.Value
	opsHead       *pool.Value
	constantsHead *pool.Value
	codeHead      *pool.Value // sentinel; cdr is the head of the Instruction chain

	registers map[string]*pool.Value
	labels    map[string]*pool.Value
	ops       map[string]*pool.Value

	codeTail *pool.Value // last appended Instruction cell, for O(1) append

	stack []*pool.Value
	pc    *pool.Value // current Instruction cell, nil at halt

	val        *pool.Value // output register cell
	outputName string

	TraceLevel int       // 0 = off, 1 = headers, 2 = headers plus decoded payload
	TraceOut   io.Writer

	interrupted int32 // set via Interrupt, polled between instructions
}

// New builds a machine from a list of already-decoded instructions (see the
// code package), rooting the resulting backbone in pool p. outputRegister
// names the register Run exports as its result.
func New(p *pool.Pool, instructions []code.Instruction, outputRegister string) (*Machine, error) {
	m := &Machine{
		pool:          p,
		registersHead: p.NewPair(nil, nil),
		labelsHead:    p.NewPair(nil, nil),
		opsHead:       p.NewPair(nil, nil),
		constantsHead: p.NewPair(nil, nil),
		codeHead:      p.NewPair(nil, nil),
		registers:     make(map[string]*pool.Value),
		labels:        make(map[string]*pool.Value),
		ops:           make(map[string]*pool.Value),
		outputName:    outputRegister,
	}
	m.root = p.NewPair(
		m.registersHead,
		p.NewPair(m.labelsHead,
			p.NewPair(m.opsHead,
				p.NewPair(m.constantsHead, m.codeHead))))
	p.RegisterRoot(m.root)

	m.val = m.register(outputRegister)
	if err := m.Load(instructions); err != nil {
		return nil, err
	}
	return m, nil
}

// Load appends instructions to the code chain, resolving labels and
// registers (possibly forward references) as it goes. It is the decode
// half of both New and AppendAndJump.
func (m *Machine) Load(instructions []code.Instruction) error {
	var pendingLabels []*pool.Value
	for _, inst := range instructions {
		if inst.Kind == code.KindLabel {
			pendingLabels = append(pendingLabels, m.label(inst.Label))
			continue
		}
		payload, t, err := m.decode(inst)
		if err != nil {
			return err
		}
		cell := m.pool.NewInstruction(m.pool.NewPair(m.tagValue(t), payload), nil)
		if m.codeTail == nil {
			m.codeHead.SetCdr(cell)
		} else {
			m.codeTail.SetCdr(cell)
		}
		m.codeTail = cell
		for _, lbl := range pendingLabels {
			lbl.SetCar(cell)
		}
		pendingLabels = nil
	}
	if len(pendingLabels) > 0 {
		return errors.New("trailing label declares no following instruction")
	}
	return nil
}

func (m *Machine) tagValue(t tag) *pool.Value { return m.pool.NewNumber(float64(t)) }

// register returns the Register cell for name, creating it on first
// reference (late binding, spec §4.5).
func (m *Machine) register(name string) *pool.Value {
	if r, ok := m.registers[name]; ok {
		return r
	}
	r := m.pool.NewRegister(m.pool.Nil(), name)
	m.registersHead.SetCdr(m.pool.NewPair(r, m.registersHead.Cdr()))
	m.registers[name] = r
	return r
}

// label returns the Label cell for name, creating it on first reference.
// Its position (Car) stays nil until a later instruction resolves it.
func (m *Machine) label(name string) *pool.Value {
	if l, ok := m.labels[name]; ok {
		return l
	}
	l := m.pool.NewLabel(nil, name)
	m.labelsHead.SetCdr(m.pool.NewPair(l, m.labelsHead.Cdr()))
	m.labels[name] = l
	return l
}

// op returns the Op cell for name, creating it unbound on first reference.
func (m *Machine) op(name string) *pool.Value {
	if o, ok := m.ops[name]; ok {
		return o
	}
	o := m.pool.NewOp(nil, name)
	m.opsHead.SetCdr(m.pool.NewPair(o, m.opsHead.Cdr()))
	m.ops[name] = o
	return o
}

// importConstant deep-clones v into the machine's pool and keeps it
// reachable via the constants chain.
func (m *Machine) importConstant(v *pool.Value) *pool.Value {
	imported := m.pool.Import(v)
	m.constantsHead.SetCdr(m.pool.NewPair(imported, m.constantsHead.Cdr()))
	return imported
}

// BindOp attaches a host function to op name. Binding may happen before or
// after code load (spec §4.5).
func (m *Machine) BindOp(name string, fn pool.PrimitiveFunc) {
	m.op(name).SetCar(m.pool.NewPrimitive(name, fn))
}

// WriteToRegister imports v into the machine's pool and stores it in the
// named register.
func (m *Machine) WriteToRegister(name string, v *pool.Value) {
	m.register(name).SetCar(m.pool.Import(v))
}

// ReadFromRegister exports the named register's current contents.
func (m *Machine) ReadFromRegister(name string) *pool.Value {
	return m.pool.Export(m.register(name).Car())
}

// AppendAndJump appends instructions to the code chain and sets the
// program counter to the first newly-appended instruction, used by the
// `code` primitive (spec §4.5) to run freshly compiled code in place.
func (m *Machine) AppendAndJump(instructions []code.Instruction) error {
	firstNew := m.codeTail
	if err := m.Load(instructions); err != nil {
		return err
	}
	if firstNew == nil {
		m.pc = m.codeHead.Cdr()
	} else {
		m.pc = firstNew.Cdr()
	}
	return nil
}

// Interrupt requests that the running machine halt at the next
// instruction boundary (spec §5's cooperative cancellation).
func (m *Machine) Interrupt() { atomic.StoreInt32(&m.interrupted, 1) }

func (m *Machine) interruptRequested() bool {
	return atomic.SwapInt32(&m.interrupted, 0) == 1
}
