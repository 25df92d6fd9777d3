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

package pool_test

import (
	"testing"

	"github.com/dn47h/schemevm/pool"
)

func TestCollectKeepsRoots(t *testing.T) {
	p := pool.New()
	root := p.NewPair(p.NewNumber(1), p.Nil())
	p.RegisterRoot(root)

	p.Collect()
	if p.Size() != 2 {
		t.Fatalf("Size() = %d, want 2 (root pair + its number) after collecting with a live root", p.Size())
	}

	p.UnregisterRoot(root)
	p.Collect()
	if p.Size() != 0 {
		t.Fatalf("Size() = %d, want 0 after unregistering the only root", p.Size())
	}
}

func TestCollectSweepsUnreachable(t *testing.T) {
	p := pool.New()
	root := p.NewPair(nil, p.Nil())
	p.RegisterRoot(root)

	p.NewPair(p.NewNumber(1), p.NewNumber(2)) // unreachable garbage
	p.Collect()

	if p.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (only the root pair survives)", p.Size())
	}
}

func TestCollectCycleTolerant(t *testing.T) {
	p := pool.New()
	pair := p.NewPair(p.NewNumber(1), p.Nil())
	pair.SetCdr(pair) // (define p (cons 1 2)) (set-cdr! p p)
	p.RegisterRoot(pair)

	p.Collect()
	if p.Size() != 2 {
		t.Fatalf("Size() = %d, want 2 (pair + its number) to survive a self-cycle", p.Size())
	}
	if pair.Cdr() != pair {
		t.Fatalf("cycle was not preserved across collection")
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	p := pool.New()
	src := pool.New()
	shared := src.NewNumber(42)
	graph := src.NewPair(shared, src.NewPair(shared, src.Nil()))

	imported := p.Import(graph)
	if !pool.Equal(imported, graph) {
		t.Fatalf("Import did not preserve structure")
	}
	if imported.Car() != imported.Cdr().Car() {
		t.Fatalf("Import did not preserve sharing of the repeated element")
	}

	exported := p.Export(imported)
	if !pool.Equal(exported, graph) {
		t.Fatalf("Export did not preserve structure")
	}
}

func TestImportCyclic(t *testing.T) {
	src := pool.New()
	pair := src.NewPair(src.NewNumber(1), src.Nil())
	pair.SetCdr(pair)

	p := pool.New()
	imported := p.Import(pair)
	if imported.Cdr() != imported {
		t.Fatalf("Import did not preserve a self-cycle")
	}
}

func TestTruthiness(t *testing.T) {
	p := pool.New()
	falsy := []*pool.Value{p.NewBool(false)}
	truthy := []*pool.Value{
		p.NewBool(true),
		p.NewNumber(0),
		p.NewString(""),
		p.Nil(),
		p.NewPair(p.NewNumber(1), p.Nil()),
	}
	for _, v := range falsy {
		if v.IsTruthy() {
			t.Errorf("%s should be falsy", pool.Print(v))
		}
	}
	for _, v := range truthy {
		if !v.IsTruthy() {
			t.Errorf("%s should be truthy", pool.Print(v))
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	p := pool.New()
	v := p.NewPair(p.NewSymbol("a"), p.NewPair(p.NewString("hi"), p.Nil()))
	got := pool.Print(v)
	want := `(a "hi")`
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}
