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

package code

import (
	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/pool"
)

// FromSource translates one line of a loaded code s-expression into an
// Instruction. A bare symbol is a label declaration; everything else must
// be a tagged list whose head names the variant ("assign", "perform",
// "branch", "goto", "save", "restore"). This is purely syntactic: for
// "assign", the third element decides assign-call vs assign-copy by
// inspecting whether it is itself an "(op ...)" token.
func FromSource(line *pool.Value) (Instruction, error) {
	if line.Kind == pool.KindSymbol {
		return NewLabel(line.Symbol()), nil
	}
	if line.Kind != pool.KindPair || line.Car().Kind != pool.KindSymbol {
		return Instruction{}, errors.Errorf("malformed code line: %s", pool.Print(line))
	}
	head := line.Car().Symbol()
	rest := line.Cdr()
	switch head {
	case "assign":
		return parseAssign(rest)
	case "perform":
		return parsePerform(rest)
	case "branch":
		return parseBranch(rest)
	case "goto":
		return parseGoto(rest)
	case "save":
		return Instruction{Kind: KindSave, Reg: pool.ToSlice(rest)[0].Symbol()}, nil
	case "restore":
		return Instruction{Kind: KindRestore, Reg: pool.ToSlice(rest)[0].Symbol()}, nil
	default:
		return Instruction{}, errors.Errorf("unknown instruction head %q", head)
	}
}

func parseOperand(tok *pool.Value) (Operand, error) {
	if tok.Kind != pool.KindPair || tok.Car().Kind != pool.KindSymbol {
		return Operand{}, errors.Errorf("malformed operand: %s", pool.Print(tok))
	}
	tag := tok.Car().Symbol()
	value := tok.Cdr().Car()
	switch tag {
	case "op":
		return Op(value.Symbol()), nil
	case "reg":
		return Reg(value.Symbol()), nil
	case "label":
		return Lbl(value.Symbol()), nil
	case "const":
		return Const(value), nil
	default:
		return Operand{}, errors.Errorf("unknown operand tag %q", tag)
	}
}

func parseOperands(toks []*pool.Value) ([]Operand, error) {
	var out []Operand
	for _, tok := range toks {
		op, err := parseOperand(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}

func parseAssign(rest *pool.Value) (Instruction, error) {
	items := pool.ToSlice(rest)
	if len(items) < 2 {
		return Instruction{}, errors.Errorf("assign: expected a destination and a source")
	}
	dst := items[0].Symbol()
	srcTok := items[1]
	if srcTok.Kind == pool.KindPair && srcTok.Car().Kind == pool.KindSymbol && srcTok.Car().Symbol() == "op" {
		opName := srcTok.Cdr().Car().Symbol()
		args, err := parseOperands(items[2:])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Kind: KindAssignCall, Dst: Reg(dst), Op: opName, Args: args}, nil
	}
	src, err := parseOperand(srcTok)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: KindAssignCopy, Dst: Reg(dst), Src: src}, nil
}

func parsePerform(rest *pool.Value) (Instruction, error) {
	items := pool.ToSlice(rest)
	if len(items) < 1 {
		return Instruction{}, errors.Errorf("perform: expected an op token")
	}
	opTok := items[0]
	if opTok.Kind != pool.KindPair || opTok.Car().Symbol() != "op" {
		return Instruction{}, errors.Errorf("perform: first element must be an (op ...) token")
	}
	opName := opTok.Cdr().Car().Symbol()
	args, err := parseOperands(items[1:])
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: KindPerform, Op: opName, Args: args}, nil
}

func parseBranch(rest *pool.Value) (Instruction, error) {
	items := pool.ToSlice(rest)
	if len(items) < 2 {
		return Instruction{}, errors.Errorf("branch: expected a label token and an op token")
	}
	lblTok, opTok := items[0], items[1]
	if lblTok.Kind != pool.KindPair || lblTok.Car().Symbol() != "label" {
		return Instruction{}, errors.Errorf("branch: first element must be a (label ...) token")
	}
	if opTok.Kind != pool.KindPair || opTok.Car().Symbol() != "op" {
		return Instruction{}, errors.Errorf("branch: second element must be an (op ...) token")
	}
	opName := opTok.Cdr().Car().Symbol()
	args, err := parseOperands(items[2:])
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Kind: KindBranch, BranchLabel: lblTok.Cdr().Car().Symbol(), Op: opName, Args: args}, nil
}

func parseGoto(rest *pool.Value) (Instruction, error) {
	items := pool.ToSlice(rest)
	if len(items) != 1 {
		return Instruction{}, errors.Errorf("goto: expected exactly one target token")
	}
	target, err := parseOperand(items[0])
	if err != nil {
		return Instruction{}, err
	}
	if target.Kind != OperandReg && target.Kind != OperandLabel {
		return Instruction{}, errors.Errorf("goto: target must be reg or label")
	}
	return Instruction{Kind: KindGoto, Target: target}, nil
}

// ToSource is the inverse of FromSource: it reproduces the instruction's
// canonical s-expression, satisfying the round-trip invariant of spec §8.
func (inst Instruction) ToSource(p *pool.Pool) *pool.Value {
	switch inst.Kind {
	case KindLabel:
		return p.NewSymbol(inst.Label)
	case KindAssignCall:
		args := []*pool.Value{p.NewSymbol("assign"), inst.Dst.toSource(p), operandToSource(p, Op(inst.Op))}
		for _, a := range inst.Args {
			args = append(args, a.toSource(p))
		}
		return p.FromSlice(args)
	case KindAssignCopy:
		return p.FromSlice([]*pool.Value{p.NewSymbol("assign"), inst.Dst.toSource(p), inst.Src.toSource(p)})
	case KindPerform:
		args := []*pool.Value{p.NewSymbol("perform"), operandToSource(p, Op(inst.Op))}
		for _, a := range inst.Args {
			args = append(args, a.toSource(p))
		}
		return p.FromSlice(args)
	case KindBranch:
		args := []*pool.Value{p.NewSymbol("branch"), operandToSource(p, Lbl(inst.BranchLabel)), operandToSource(p, Op(inst.Op))}
		for _, a := range inst.Args {
			args = append(args, a.toSource(p))
		}
		return p.FromSlice(args)
	case KindGoto:
		return p.FromSlice([]*pool.Value{p.NewSymbol("goto"), inst.Target.toSource(p)})
	case KindSave:
		return p.FromSlice([]*pool.Value{p.NewSymbol("save"), p.NewSymbol(inst.Reg)})
	case KindRestore:
		return p.FromSlice([]*pool.Value{p.NewSymbol("restore"), p.NewSymbol(inst.Reg)})
	default:
		return p.Nil()
	}
}

func (o Operand) toSource(p *pool.Pool) *pool.Value { return operandToSource(p, o) }

func operandToSource(p *pool.Pool, o Operand) *pool.Value {
	var tag, val *pool.Value
	switch o.Kind {
	case OperandOp:
		tag, val = p.NewSymbol("op"), p.NewSymbol(o.Name)
	case OperandReg:
		tag, val = p.NewSymbol("reg"), p.NewSymbol(o.Name)
	case OperandLabel:
		tag, val = p.NewSymbol("label"), p.NewSymbol(o.Name)
	case OperandConst:
		tag, val = p.NewSymbol("const"), o.Const
	}
	return p.NewPair(tag, p.NewPair(val, p.Nil()))
}
