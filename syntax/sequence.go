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

package syntax

import "github.com/dn47h/schemevm/pool"

// IsBegin reports `(begin ...)`.
func IsBegin(exp *pool.Value) bool { return IsTaggedList(exp, "begin") }

// BeginActions returns `(x y z)` from `(begin x y z)`.
func BeginActions(exp *pool.Value) *pool.Value { return exp.Cdr() }

// HasNoExps reports the empty sequence.
func HasNoExps(seq *pool.Value) bool { return seq == nil || seq.IsNil() }

// IsLastExp reports a one-element sequence.
func IsLastExp(seq *pool.Value) bool {
	return seq.Cdr() == nil || seq.Cdr().IsNil()
}

// FirstExp returns x from `(x y z)`.
func FirstExp(seq *pool.Value) *pool.Value { return seq.Car() }

// RestExps returns `(y z)` from `(x y z)`.
func RestExps(seq *pool.Value) *pool.Value { return seq.Cdr() }

// TransformSequence collapses a clause body into a single expression per
// spec §4.3: zero expressions become nil, one expression stands alone, two
// or more are wrapped in `(begin ...)`.
func TransformSequence(p *pool.Pool, seq *pool.Value) *pool.Value {
	switch {
	case HasNoExps(seq):
		return p.Nil()
	case IsLastExp(seq):
		return FirstExp(seq)
	default:
		return p.NewPair(p.NewSymbol("begin"), seq)
	}
}
