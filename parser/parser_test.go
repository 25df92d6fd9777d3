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

package parser_test

import (
	"testing"

	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

func TestParseAtoms(t *testing.T) {
	p := pool.New()
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-3.5", "-3.5"},
		{"1e3", "1000"},
		{"foo", "foo"},
		{"nil", "()"},
		{"true", "true"},
		{"false", "false"},
		{"#t", "true"},
		{"#f", "false"},
		{`"hi"`, `"hi"`},
	}
	for _, c := range cases {
		forms, err := parser.Parse(p, c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		items := pool.ToSlice(forms)
		if len(items) != 1 {
			t.Fatalf("Parse(%q): expected 1 form, got %d", c.src, len(items))
		}
		if got := pool.Print(items[0]); got != c.want {
			t.Fatalf("Parse(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestParseList(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "(+ 1 2 3)")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if len(items) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(items))
	}
	if got, want := pool.Print(items[0]), "(+ 1 2 3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseDottedPair(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "(a . b)")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if got, want := pool.Print(items[0]), "(a . b)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseDottedPairTail(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "(a b . c)")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if got, want := pool.Print(items[0]), "(a b . c)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseQuote(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "'(1 2)")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if got, want := pool.Print(items[0]), "(quote (1 2))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "1 2 (+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if len(items) != 3 {
		t.Fatalf("expected 3 top-level forms, got %d", len(items))
	}
}

func TestParseComment(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "1 ; this is a comment\n2")
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if len(items) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(items))
	}
}

func TestParseStringEscapes(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, `"a\nb\tc\\d\"e"`)
	if err != nil {
		t.Fatal(err)
	}
	items := pool.ToSlice(forms)
	if got, want := items[0].Str(), "a\nb\tc\\d\"e"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	p := pool.New()
	cases := []string{
		"(1 2",
		"1 2)",
		"'",
		`"unterminated`,
		"(. 1)",
		"(1 . 2 3)",
	}
	for _, c := range cases {
		if _, err := parser.Parse(p, c); err == nil {
			t.Fatalf("Parse(%q): expected an error", c)
		}
	}
}
