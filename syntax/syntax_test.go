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

package syntax_test

import (
	"testing"

	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

func parseOne(t *testing.T, p *pool.Pool, src string) *pool.Value {
	t.Helper()
	forms, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return pool.ToSlice(forms)[0]
}

func TestIsSelfEvaluating(t *testing.T) {
	p := pool.New()
	for _, src := range []string{"10", `"hi"`, "true", "false"} {
		if !syntax.IsSelfEvaluating(parseOne(t, p, src)) {
			t.Fatalf("%q should be self-evaluating", src)
		}
	}
	if syntax.IsSelfEvaluating(parseOne(t, p, "x")) {
		t.Fatalf("a symbol should not be self-evaluating")
	}
}

func TestDefinitionWithParamsDesugars(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(define (f x y) (+ x y) x)")
	if !syntax.IsDefinition(exp) {
		t.Fatalf("expected a definition")
	}
	if got, want := syntax.DefinitionVariable(exp).Symbol(), "f"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	value := syntax.DefinitionValue(p, exp)
	if got, want := pool.Print(value), "(lambda (x y) (+ x y) x)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfAlternativeDefaultsToFalse(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(if x y)")
	alt := syntax.IfAlternative(p, exp)
	if alt.Kind != pool.KindBool || alt.Truth() != false {
		t.Fatalf("expected false, got %s", pool.Print(alt))
	}
}

func TestTransformLet(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(let ((x 10) (y 20)) (+ x y))")
	got := pool.Print(syntax.TransformLet(p, exp))
	want := "((lambda (x y) (+ x y)) 10 20)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTransformCond(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(cond ((= 1 2) 'a) ((= 2 2) 'b) (else 'c))")
	got := pool.Print(syntax.TransformCond(p, exp))
	want := "(if (= 1 2) (quote a) (if (= 2 2) (quote b) (quote c)))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTransformCondNoElse(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(cond ((= 1 2) 'a))")
	got := pool.Print(syntax.TransformCond(p, exp))
	want := "(if (= 1 2) (quote a) false)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCheckDefinitionRejectsBadShape(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(define)")
	if err := syntax.CheckDefinition(exp); err == nil {
		t.Fatalf("expected an error for malformed define")
	}
}

func TestCheckLetRejectsBadBinding(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(let ((x)) x)")
	if err := syntax.CheckLet(exp); err == nil {
		t.Fatalf("expected an error for a malformed let binding")
	}
}

func TestIsApplicationIsLastResort(t *testing.T) {
	p := pool.New()
	exp := parseOne(t, p, "(foo 1 2)")
	if syntax.IsDefinition(exp) || syntax.IsIf(exp) || syntax.IsLambda(exp) {
		t.Fatalf("a plain call should not match any special form recognizer")
	}
	if !syntax.IsApplication(exp) {
		t.Fatalf("expected an application")
	}
}

func TestAdjoinArgPreservesOrder(t *testing.T) {
	p := pool.New()
	argl := syntax.MakeEmptyArglist(p)
	argl = syntax.AdjoinArg(p, p.NewNumber(1), argl)
	argl = syntax.AdjoinArg(p, p.NewNumber(2), argl)
	argl = syntax.AdjoinArg(p, p.NewNumber(3), argl)
	if got, want := pool.Print(argl), "(1 2 3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
