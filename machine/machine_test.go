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

package machine_test

import (
	"testing"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/pool"
)

func bindAdd(m *machine.Machine, p *pool.Pool) {
	m.BindOp("add", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		return p.NewNumber(items[0].Number() + items[1].Number()), nil
	})
}

func TestAssignCall(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCall("val", "add", code.Const(p.NewNumber(3)), code.Const(p.NewNumber(4))),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	bindAdd(m, p)
	result := m.Run(nil)
	if got, want := result.Number(), 7.0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAssignCopy(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCopy("val", code.Const(p.NewNumber(42))),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	result := m.Run(nil)
	if got, want := result.Number(), 42.0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBranchAndGoto(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCopy("val", code.Const(p.NewNumber(1))),
		code.NewBranch("skip", "true?", code.Reg("val")),
		code.NewAssignCopy("val", code.Const(p.NewNumber(999))),
		code.NewLabel("skip"),
		code.NewAssignCopy("val", code.Const(p.NewNumber(2))),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	m.BindOp("true?", func(args *pool.Value) (*pool.Value, error) {
		return p.NewBool(pool.ToSlice(args)[0].IsTruthy()), nil
	})
	result := m.Run(nil)
	if got, want := result.Number(), 2.0; got != want {
		t.Fatalf("got %v, want %v (branch should have skipped the 999 assignment)", got, want)
	}
}

func TestSaveRestore(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCopy("val", code.Const(p.NewNumber(10))),
		code.NewSave("val"),
		code.NewAssignCopy("val", code.Const(p.NewNumber(20))),
		code.NewRestore("val"),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	result := m.Run(nil)
	if got, want := result.Number(), 10.0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnboundOpHalts(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCall("val", "nonexistent"),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	result := m.Run(nil)
	if result.Kind != pool.KindError {
		t.Fatalf("expected an error Value for an unbound op, got %s", pool.Print(result))
	}
}

func TestPerformErrorHalts(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewPerform("boom"),
		code.NewAssignCopy("val", code.Const(p.NewNumber(1))),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	m.BindOp("boom", func(args *pool.Value) (*pool.Value, error) {
		return p.NewError("boom"), nil
	})
	result := m.Run(nil)
	if result.Kind != pool.KindError {
		t.Fatalf("expected the perform's error to halt the machine, got %s", pool.Print(result))
	}
}

func TestInputsAndOutputRegister(t *testing.T) {
	p := pool.New()
	instrs := []code.Instruction{
		code.NewAssignCopy("val", code.Reg("x")),
	}
	m, err := machine.New(p, instrs, "val")
	if err != nil {
		t.Fatal(err)
	}
	result := m.Run(map[string]*pool.Value{"x": p.NewNumber(5)})
	if got, want := result.Number(), 5.0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
