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

package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

func TestTidyEchoStripsOuterParens(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, "(define x 1) (+ x 2)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := tidyEcho(p, pool.ToSlice(forms))
	want := "(define x 1) (+ x 2)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTidyEchoEmptyForEmptyInput(t *testing.T) {
	p := pool.New()
	if got := tidyEcho(p, nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestPathArgSymbolAndString(t *testing.T) {
	p := pool.New()
	forms, err := parser.Parse(p, `lib/foo.scm "lib/bar.scm"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	items := pool.ToSlice(forms)
	if got := pathArg(items[0]); got != "lib/foo.scm" {
		t.Fatalf("symbol path: got %q", got)
	}
	if got := pathArg(items[1]); got != "lib/bar.scm" {
		t.Fatalf("string path: got %q", got)
	}
}

func TestSchemeFilesWalksAlphabetically(t *testing.T) {
	dir := t.TempDir()
	names := []string{"b.scm", "a.scm", "c.txt"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("1"), 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "d.scm"), []byte("1"), 0o644); err != nil {
		t.Fatalf("write d.scm: %v", err)
	}

	files, err := schemeFiles(dir)
	if err != nil {
		t.Fatalf("schemeFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	for i := 0; i < len(files)-1; i++ {
		if files[i] > files[i+1] {
			t.Fatalf("not sorted: %v", files)
		}
	}
	for _, f := range files {
		if filepath.Ext(f) != ".scm" {
			t.Fatalf("non-.scm file picked up: %s", f)
		}
	}
}

func TestLoadEvaluatorFileCollectsLabels(t *testing.T) {
	p := pool.New()
	dir := t.TempDir()
	path := filepath.Join(dir, "eval.scm")
	src := `
eval-dispatch
(assign val (const 42))
(goto (reg continue))
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	instructions, labels, err := loadEvaluatorFile(p, path)
	if err != nil {
		t.Fatalf("loadEvaluatorFile: %v", err)
	}
	if len(instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(instructions))
	}
	if !labels["eval-dispatch"] {
		t.Fatalf("eval-dispatch label not recorded: %v", labels)
	}
}

func TestLoadEvaluatorFileEmptyPath(t *testing.T) {
	p := pool.New()
	instructions, labels, err := loadEvaluatorFile(p, "")
	if err != nil || instructions != nil || labels != nil {
		t.Fatalf("expected all-nil no-op, got %v %v %v", instructions, labels, err)
	}
}
