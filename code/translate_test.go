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

package code_test

import (
	"testing"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

func roundTrip(t *testing.T, p *pool.Pool, src string) {
	t.Helper()
	forms, err := parser.Parse(p, src)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	line := pool.ToSlice(forms)[0]
	inst, err := code.FromSource(line)
	if err != nil {
		t.Fatalf("FromSource(%s): %v", pool.Print(line), err)
	}
	got := pool.Print(inst.ToSource(p))
	want := pool.Print(line)
	if got != want {
		t.Fatalf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	p := pool.New()
	cases := []string{
		`(assign val (op lookup-variable-value) (const x) (reg env))`,
		`(assign val (reg argl))`,
		`(assign val (const 10))`,
		`(perform (op define-variable!) (const x) (reg val) (reg env))`,
		`(branch (label false-branch1) (op false?) (reg val))`,
		`(goto (label after-if1))`,
		`(goto (reg val))`,
		`(save env)`,
		`(restore env)`,
	}
	for _, c := range cases {
		roundTrip(t, p, c)
	}
}

func TestLabelDeclaration(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "entry-point")
	if err != nil {
		t.Fatal(err)
	}
	line := pool.ToSlice(forms)[0]
	inst, err := code.FromSource(line)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Kind != code.KindLabel || inst.Label != "entry-point" {
		t.Fatalf("expected a label declaration, got %+v", inst)
	}
}
