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

package primitives_test

import (
	"bytes"
	"testing"

	"github.com/dn47h/schemevm/compiler"
	"github.com/dn47h/schemevm/env"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/primitives"
)

// newEvaluator builds a fresh pool, machine, global environment, and
// compiler, with every primitive registered, ready to compile and run one
// expression at a time.
func newEvaluator(t *testing.T) (*pool.Pool, *machine.Machine, *compiler.Compiler, *pool.Value) {
	t.Helper()
	p := pool.New()
	m, err := machine.New(p, nil, "val")
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	global := env.New(p, nil)
	c := compiler.New(nil)
	var out bytes.Buffer
	primitives.Register(p, m, c, global, &out)
	return p, m, c, global
}

func evalOne(t *testing.T, src string) *pool.Value {
	t.Helper()
	p, m, c, global := newEvaluator(t)
	exp, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	forms := pool.ToSlice(exp)
	if len(forms) != 1 {
		t.Fatalf("expected exactly one form, got %d", len(forms))
	}
	seq, err := c.Compile(p, forms[0], "val", compiler.LinkageNext)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	if err := m.Load(seq.Instructions); err != nil {
		t.Fatalf("load %q: %v", src, err)
	}
	return m.Run(map[string]*pool.Value{"env": global})
}

func TestArithmetic(t *testing.T) {
	cases := map[string]float64{
		"(+ 1 2 3)": 6,
		"(- 10 1 2 3)": 4,
		"(- 5)": -5,
		"(* 2 3 4)": 24,
		"(/ 10 2)": 5,
	}
	for src, want := range cases {
		result := evalOne(t, src)
		if result.Kind != pool.KindNumber || result.Number() != want {
			t.Fatalf("%s: got %s, want %v", src, pool.Print(result), want)
		}
	}
}

func TestLambdaApplication(t *testing.T) {
	result := evalOne(t, "((lambda (x y) (+ x y)) 3 4)")
	if result.Kind != pool.KindNumber || result.Number() != 7 {
		t.Fatalf("got %s, want 7", pool.Print(result))
	}
}

func TestVariadicLambda(t *testing.T) {
	result := evalOne(t, "((lambda (x . rest) rest) 1 2 3)")
	if pool.Print(result) != "(2 3)" {
		t.Fatalf("got %s, want (2 3)", pool.Print(result))
	}
}

func TestLet(t *testing.T) {
	result := evalOne(t, "(let ((x 10) (y 20)) (+ x y))")
	if result.Number() != 30 {
		t.Fatalf("got %s, want 30", pool.Print(result))
	}
}

func TestCondWithElse(t *testing.T) {
	result := evalOne(t, "(cond ((= 1 2) 'a) ((= 2 2) 'b) (else 'c))")
	if result.Symbol() != "b" {
		t.Fatalf("got %s, want b", pool.Print(result))
	}
}

func TestCondNoMatch(t *testing.T) {
	result := evalOne(t, "(cond ((= 1 2) 'a))")
	if result.Kind != pool.KindBool || result.Truth() {
		t.Fatalf("got %s, want false", pool.Print(result))
	}
}

func TestAndOr(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"(and 1 2 3)", "3"},
		{"(and)", "true"},
		{"(or false false 5)", "5"},
		{"(or)", "false"},
	}
	for _, c := range cases {
		result := evalOne(t, c.src)
		if pool.Print(result) != c.want {
			t.Fatalf("%s: got %s, want %s", c.src, pool.Print(result), c.want)
		}
	}
}

func TestSetCar(t *testing.T) {
	p, m, c, global := newEvaluator(t)
	src := "(begin (define p (cons 1 2)) (set-car! p 'x) p)"
	exp, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	forms := pool.ToSlice(exp)
	seq, err := c.Compile(p, forms[0], "val", compiler.LinkageNext)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := m.Load(seq.Instructions); err != nil {
		t.Fatalf("load: %v", err)
	}
	result := m.Run(map[string]*pool.Value{"env": global})
	if pool.Print(result) != "(x . 2)" {
		t.Fatalf("got %s, want (x . 2)", pool.Print(result))
	}
}

func TestRecursiveFactorial(t *testing.T) {
	p, m, c, global := newEvaluator(t)
	src := "(begin (define fact (lambda (n) (if (= n 0) 1 (* n (fact (- n 1)))))) (fact 5))"
	exp, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	forms := pool.ToSlice(exp)
	seq, err := c.Compile(p, forms[0], "val", compiler.LinkageNext)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := m.Load(seq.Instructions); err != nil {
		t.Fatalf("load: %v", err)
	}
	result := m.Run(map[string]*pool.Value{"env": global})
	if result.Kind != pool.KindNumber || result.Number() != 120 {
		t.Fatalf("got %s, want 120", pool.Print(result))
	}
}

func TestApplyingNonProcedureErrors(t *testing.T) {
	result := evalOne(t, "(1 2 3)")
	if result.Kind != pool.KindError {
		t.Fatalf("expected an Error value, got %s", pool.Print(result))
	}
}

func TestUnboundVariableErrors(t *testing.T) {
	result := evalOne(t, "unbound-name")
	if result.Kind != pool.KindError {
		t.Fatalf("expected an Error value, got %s", pool.Print(result))
	}
}
