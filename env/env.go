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

// Package env implements nested name-to-value environments layered on pool
// pairs: a chain of frames, each a pair-list of (name . value) records.
package env

import "github.com/dn47h/schemevm/pool"

// New allocates a fresh, empty environment frame whose parent is parent
// (nil for the global environment).
func New(p *pool.Pool, parent *pool.Value) *pool.Value {
	return p.NewEnv(parent)
}

// Lookup finds the record bound to name, starting at the innermost frame of
// env. If recursive is false, only env's own frame is scanned. Returns nil
// if name is unbound in the scanned frame(s).
func Lookup(env *pool.Value, name string, recursive bool) *pool.Value {
	if env == nil {
		return nil
	}
	for pair := env.Frame(); pair != nil && pair.Kind == pool.KindPair; pair = pair.Cdr() {
		record := pair.Car()
		if record.Car().Symbol() == name {
			return record
		}
	}
	if recursive {
		return Lookup(env.Parent(), name, recursive)
	}
	return nil
}

// Value returns a record's bound value.
func Value(record *pool.Value) *pool.Value { return record.Cdr() }

// SetValue mutates a record's bound value in place.
func SetValue(record *pool.Value, v *pool.Value) { record.SetCdr(v) }

// Define binds name to v in env's own frame, prepending a fresh record.
// Re-defining an already-bound name in the same frame shadows the previous
// record rather than erroring; callers that need def-once semantics should
// Lookup(env, name, false) first.
func Define(p *pool.Pool, env *pool.Value, name string, v *pool.Value) {
	record := p.NewPair(p.NewSymbol(name), v)
	env.SetFrame(p.NewPair(record, env.Frame()))
}

// Set walks the environment chain looking for name and mutates its binding
// in place. Reports whether name was found.
func Set(env *pool.Value, name string, v *pool.Value) bool {
	record := Lookup(env, name, true)
	if record == nil {
		return false
	}
	SetValue(record, v)
	return true
}
