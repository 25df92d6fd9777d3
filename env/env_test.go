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

package env_test

import (
	"testing"

	"github.com/dn47h/schemevm/env"
	"github.com/dn47h/schemevm/pool"
)

func TestLookupPrecedence(t *testing.T) {
	p := pool.New()
	global := env.New(p, nil)
	env.Define(p, global, "x", p.NewNumber(1))

	inner := env.New(p, global)
	env.Define(p, inner, "x", p.NewNumber(2))

	rec := env.Lookup(inner, "x", true)
	if rec == nil || env.Value(rec).Number() != 2 {
		t.Fatalf("innermost binding of x should win, got %v", rec)
	}
}

func TestLookupNonRecursive(t *testing.T) {
	p := pool.New()
	global := env.New(p, nil)
	env.Define(p, global, "x", p.NewNumber(1))
	inner := env.New(p, global)

	if rec := env.Lookup(inner, "x", false); rec != nil {
		t.Fatalf("non-recursive lookup should not see parent frames")
	}
	if rec := env.Lookup(inner, "x", true); rec == nil {
		t.Fatalf("recursive lookup should find x in the parent frame")
	}
}

func TestSetWalksChain(t *testing.T) {
	p := pool.New()
	global := env.New(p, nil)
	env.Define(p, global, "x", p.NewNumber(1))
	inner := env.New(p, global)

	if !env.Set(inner, "x", p.NewNumber(9)) {
		t.Fatalf("set! should find x in an enclosing frame")
	}
	rec := env.Lookup(global, "x", false)
	if rec == nil || env.Value(rec).Number() != 9 {
		t.Fatalf("set! should mutate the binding in place, got %v", rec)
	}
}

func TestSetUnbound(t *testing.T) {
	p := pool.New()
	global := env.New(p, nil)
	if env.Set(global, "nope", p.NewNumber(1)) {
		t.Fatalf("set! on an unbound variable should fail")
	}
}
