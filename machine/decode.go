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
	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/pool"
)

// decode resolves an Instruction's operand tokens against the machine's
// register/label/op tables and constant pool, producing the payload stored
// in the code chain. This is purely syntactic translation (spec §4.4): the
// shape of inst alone picks the tag and payload layout.
func (m *Machine) decode(inst code.Instruction) (*pool.Value, tag, error) {
	switch inst.Kind {
	case code.KindAssignCopy:
		dst := m.register(inst.Dst.Name)
		src, err := m.decodeSource(inst.Src)
		if err != nil {
			return nil, 0, err
		}
		return m.pool.NewPair(dst, src), tagAssignCopy, nil

	case code.KindAssignCall:
		dst := m.register(inst.Dst.Name)
		args, err := m.decodeArgs(inst.Args)
		if err != nil {
			return nil, 0, err
		}
		return m.pool.NewPair(dst, m.pool.NewPair(m.op(inst.Op), args)), tagCall, nil

	case code.KindPerform:
		args, err := m.decodeArgs(inst.Args)
		if err != nil {
			return nil, 0, err
		}
		return m.pool.NewPair(nil, m.pool.NewPair(m.op(inst.Op), args)), tagCall, nil

	case code.KindBranch:
		args, err := m.decodeArgs(inst.Args)
		if err != nil {
			return nil, 0, err
		}
		lbl := m.label(inst.BranchLabel)
		return m.pool.NewPair(lbl, m.pool.NewPair(m.op(inst.Op), args)), tagBranch, nil

	case code.KindGoto:
		target, err := m.decodeTarget(inst.Target)
		if err != nil {
			return nil, 0, err
		}
		return target, tagGoto, nil

	case code.KindSave:
		return m.register(inst.Reg), tagSave, nil

	case code.KindRestore:
		return m.register(inst.Reg), tagRestore, nil

	default:
		return nil, 0, errors.Errorf("unrecognized instruction kind %d", inst.Kind)
	}
}

// decodeSource resolves the src operand of an assign-copy instruction: a
// register, a label cell, or an imported constant.
func (m *Machine) decodeSource(o code.Operand) (*pool.Value, error) {
	switch o.Kind {
	case code.OperandReg:
		return m.register(o.Name), nil
	case code.OperandLabel:
		return m.label(o.Name), nil
	case code.OperandConst:
		return m.importConstant(o.Const), nil
	default:
		return nil, errors.Errorf("assign source must be reg, label, or const")
	}
}

// decodeTarget resolves a goto target: a register or a label.
func (m *Machine) decodeTarget(o code.Operand) (*pool.Value, error) {
	switch o.Kind {
	case code.OperandReg:
		return m.register(o.Name), nil
	case code.OperandLabel:
		return m.label(o.Name), nil
	default:
		return nil, errors.Errorf("goto target must be reg or label")
	}
}

// decodeArgs resolves an op call's argument tokens to a pool list whose
// elements are Register cells (read at call time), already-imported
// constant Values, or Label cells — the latter needed by
// make-compiled-procedure, which takes its entry point as a plain op
// argument rather than a goto target.
func (m *Machine) decodeArgs(args []code.Operand) (*pool.Value, error) {
	resolved := make([]*pool.Value, len(args))
	for i, a := range args {
		switch a.Kind {
		case code.OperandReg:
			resolved[i] = m.register(a.Name)
		case code.OperandConst:
			resolved[i] = m.importConstant(a.Const)
		case code.OperandLabel:
			resolved[i] = m.label(a.Name)
		default:
			return nil, errors.Errorf("op arguments must be reg, const, or label")
		}
	}
	return m.pool.FromSlice(resolved), nil
}

// resolveArg reads an argument list element at call time: a Register cell
// is dereferenced, anything else (an imported constant or a Label cell) is
// used directly.
func resolveArg(v *pool.Value) *pool.Value {
	if v != nil && v.Kind == pool.KindRegister {
		return v.Car()
	}
	return v
}
