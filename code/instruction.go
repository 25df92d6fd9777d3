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

// Package code implements the strongly-typed register-machine instruction
// model (label declarations, assign/perform/branch/goto/save/restore) and
// the bidirectional translation between instruction objects and their
// s-expression source form.
package code

import "github.com/dn47h/schemevm/pool"

// Kind discriminates the instruction variants of spec §4.4.
type Kind int

const (
	// KindLabel is a standalone label declaration; it is never executed,
	// only recorded as a position in the code chain.
	KindLabel Kind = iota
	// KindAssignCall calls an op with arguments and stores the result in a
	// register. An Error result halts the machine.
	KindAssignCall
	// KindAssignCopy copies a register, label, or constant into a register.
	KindAssignCopy
	// KindPerform calls an op and discards the result (but still halts on
	// an Error result).
	KindPerform
	// KindBranch calls an op and, if the result is truthy, jumps to a
	// label; otherwise falls through.
	KindBranch
	// KindGoto unconditionally jumps to a register or label.
	KindGoto
	// KindSave pushes a register's current value on the stack.
	KindSave
	// KindRestore pops a value off the stack into a register.
	KindRestore
)

// OperandKind discriminates the four operand token forms.
type OperandKind int

const (
	OperandOp OperandKind = iota
	OperandReg
	OperandLabel
	OperandConst
)

// Operand is one token: `(op name)`, `(reg name)`, `(label name)`, or
// `(const value)`.
type Operand struct {
	Kind  OperandKind
	Name  string      // set for Op, Reg, Label
	Const *pool.Value // set for Const
}

// Reg constructs a `(reg name)` operand.
func Reg(name string) Operand { return Operand{Kind: OperandReg, Name: name} }

// Lbl constructs a `(label name)` operand.
func Lbl(name string) Operand { return Operand{Kind: OperandLabel, Name: name} }

// Const constructs a `(const value)` operand.
func Const(v *pool.Value) Operand { return Operand{Kind: OperandConst, Const: v} }

// Op constructs an `(op name)` operand.
func Op(name string) Operand { return Operand{Kind: OperandOp, Name: name} }

// Instruction is one line of compiled code: either a label declaration or
// one of the seven executable variants. Not every field is meaningful for
// every Kind; see the constructor functions below for the populated subset.
type Instruction struct {
	Kind Kind

	Label string // KindLabel

	Dst Operand   // KindAssignCall, KindAssignCopy: destination register
	Op  string    // KindAssignCall, KindPerform, KindBranch: op name
	Src Operand   // KindAssignCopy: source reg/label/const
	Args []Operand // KindAssignCall, KindPerform, KindBranch: call arguments

	BranchLabel string  // KindBranch: target label name
	Target      Operand // KindGoto: reg or label target

	Reg string // KindSave, KindRestore
}

// NewLabel builds a label declaration.
func NewLabel(name string) Instruction {
	return Instruction{Kind: KindLabel, Label: name}
}

// NewAssignCall builds `(assign dst (op name) args...)`.
func NewAssignCall(dst, op string, args ...Operand) Instruction {
	return Instruction{Kind: KindAssignCall, Dst: Reg(dst), Op: op, Args: args}
}

// NewAssignCopy builds `(assign dst src)` where src is a reg/label/const
// operand.
func NewAssignCopy(dst string, src Operand) Instruction {
	return Instruction{Kind: KindAssignCopy, Dst: Reg(dst), Src: src}
}

// NewPerform builds `(perform (op name) args...)`.
func NewPerform(op string, args ...Operand) Instruction {
	return Instruction{Kind: KindPerform, Op: op, Args: args}
}

// NewBranch builds `(branch (label name) (op name) args...)`.
func NewBranch(label, op string, args ...Operand) Instruction {
	return Instruction{Kind: KindBranch, BranchLabel: label, Op: op, Args: args}
}

// NewGoto builds `(goto target)` where target is a reg or label operand.
func NewGoto(target Operand) Instruction {
	return Instruction{Kind: KindGoto, Target: target}
}

// NewSave builds `(save reg)`.
func NewSave(reg string) Instruction {
	return Instruction{Kind: KindSave, Reg: reg}
}

// NewRestore builds `(restore reg)`.
func NewRestore(reg string) Instruction {
	return Instruction{Kind: KindRestore, Reg: reg}
}
