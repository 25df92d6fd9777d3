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

package compiler_test

import (
	"testing"

	"github.com/dn47h/schemevm/compiler"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

func compileOne(t *testing.T, p *pool.Pool, src, target, linkage string, known map[string]bool) compiler.Seq {
	t.Helper()
	exp, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	forms := pool.ToSlice(exp)
	if len(forms) != 1 {
		t.Fatalf("expected exactly one form, got %d", len(forms))
	}
	c := compiler.New(known)
	seq, err := c.Compile(p, forms[0], target, linkage)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return seq
}

func TestCompileSelfEvaluating(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "42", "val", compiler.LinkageNext, nil)
	if len(seq.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(seq.Instructions))
	}
	if !seq.Modified["val"] {
		t.Fatalf("expected val to be modified")
	}
}

func TestCompileVariableNeedsEnv(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "x", "val", compiler.LinkageNext, nil)
	if !seq.Needed["env"] {
		t.Fatalf("expected env to be needed")
	}
}

func TestCompileIfSynthesizesAfterLabel(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "(if x 1 2)", "val", compiler.LinkageNext, nil)
	foundAfter := false
	for _, inst := range seq.Instructions {
		if inst.Kind == 0 && len(inst.Label) >= len("after-if") && inst.Label[:len("after-if")] == "after-if" {
			foundAfter = true
		}
	}
	if !foundAfter {
		t.Fatalf("expected an after-if label in %#v", seq.Instructions)
	}
}

func TestCompileLambdaTacksOnBody(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "(lambda (x) x)", "val", compiler.LinkageNext, nil)
	if len(seq.Instructions) == 0 {
		t.Fatalf("expected non-empty lambda code")
	}
	if seq.Needed["proc"] || seq.Needed["argl"] {
		t.Fatalf("lambda body's needs must not leak to the outer sequence: %#v", seq.Needed)
	}
}

func TestCompileApplicationNeedsEnv(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "(f x y)", "val", compiler.LinkageNext, nil)
	if !seq.Needed["env"] {
		t.Fatalf("expected env to be needed for operator/operand lookups")
	}
}

func TestCompileAndOrEmptyDefaults(t *testing.T) {
	p := pool.New()
	seqAnd := compileOne(t, p, "(and)", "val", compiler.LinkageNext, nil)
	seqOr := compileOne(t, p, "(or)", "val", compiler.LinkageNext, nil)
	if len(seqAnd.Instructions) == 0 || len(seqOr.Instructions) == 0 {
		t.Fatalf("expected non-empty code for empty and/or")
	}
}

func TestCompileEvalRequiresKnownLabel(t *testing.T) {
	p := pool.New()
	exp, err := parser.Parse(p, "(eval x)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	forms := pool.ToSlice(exp)
	c := compiler.New(nil)
	if _, err := c.Compile(p, forms[0], "val", compiler.LinkageNext); err == nil {
		t.Fatalf("expected compile-time error when eval-dispatch is unknown")
	}

	c2 := compiler.New(map[string]bool{"eval-dispatch": true})
	if _, err := c2.Compile(p, forms[0], "val", compiler.LinkageNext); err != nil {
		t.Fatalf("unexpected error with known eval-dispatch: %v", err)
	}
}

func TestCompileRejectsMalformedIf(t *testing.T) {
	p := pool.New()
	exp, err := parser.Parse(p, "(if)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	forms := pool.ToSlice(exp)
	c := compiler.New(nil)
	if _, err := c.Compile(p, forms[0], "val", compiler.LinkageNext); err == nil {
		t.Fatalf("expected malformed-if to be rejected by the syntax check")
	}
}

func TestCompileLetDesugarsToApplication(t *testing.T) {
	p := pool.New()
	seq := compileOne(t, p, "(let ((x 1)) x)", "val", compiler.LinkageNext, nil)
	if len(seq.Instructions) == 0 {
		t.Fatalf("expected let to produce code via lambda-application desugaring")
	}
}
