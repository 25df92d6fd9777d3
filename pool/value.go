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

// Package pool implements the tagged Value model and the generational
// mark-and-sweep arena ("pool") that owns every Value allocated while a
// machine runs.
package pool

import "fmt"

// Kind discriminates the payload carried by a Value.
type Kind uint8

// The recognised Value kinds. Nil is a distinguished singleton kind rather
// than a nil Go pointer: a Value of Kind Nil prints as "()" and is equal
// only to itself.
const (
	KindNumber Kind = iota
	KindSymbol
	KindString
	KindBool
	KindNil
	KindError
	KindInfo
	KindPair
	KindPrimitive
	KindCompound
	KindCompiled
	KindEnv
	// Machine internals. Opaque outside the machine package; never produced
	// by the parser or primitives.
	KindRegister
	KindLabel
	KindOp
	KindInstruction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindError:
		return "error"
	case KindInfo:
		return "info"
	case KindPair:
		return "pair"
	case KindPrimitive:
		return "primitive"
	case KindCompound:
		return "compound"
	case KindCompiled:
		return "compiled"
	case KindEnv:
		return "env"
	case KindRegister:
		return "register"
	case KindLabel:
		return "label"
	case KindOp:
		return "op"
	case KindInstruction:
		return "instruction"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// PrimitiveFunc is the signature of a host-implemented operation. args is
// the (possibly nil) pair-list of argument Values; the result is either a
// Value or an error halting the current machine run.
type PrimitiveFunc func(args *Value) (*Value, error)

// Value is the tagged heterogeneous runtime value. Every Value in use by a
// running machine is owned by exactly one Pool: allocated by one of the
// Pool's New* constructors, stamped with the Pool's current generation, and
// linked into the Pool's chain.
//
// Different Kinds use different subsets of the fields below; see the
// accessor methods for the mapping. Car/Cdr are reused across Pair, Env,
// Compound, Compiled, and the machine-internal kinds so that the garbage
// collector has a single compound-value case to trace.
type Value struct {
	Kind Kind

	number float64
	text   string // Symbol/String payload, or the formatted Error/Info message
	truth  bool

	car *Value
	cdr *Value

	name string // Primitive procedure name
	fn   PrimitiveFunc

	gen  uint64
	next *Value // Pool chain link; unused outside the pool package
}

// Number returns the numeric payload of a Number Value.
func (v *Value) Number() float64 { return v.number }

// Symbol returns the name of a Symbol Value.
func (v *Value) Symbol() string { return v.text }

// Str returns the contents of a String Value.
func (v *Value) Str() string { return v.text }

// Truth returns the payload of a Bool Value.
func (v *Value) Truth() bool { return v.truth }

// Message returns the formatted text of an Error or Info Value.
func (v *Value) Message() string { return v.text }

// Car returns the car of a Pair (or any compound Value reusing the Pair
// shape: Env, Compound, Compiled, and the machine-internal kinds).
func (v *Value) Car() *Value { return v.car }

// Cdr returns the cdr of a Pair (or any compound Value reusing the Pair
// shape).
func (v *Value) Cdr() *Value { return v.cdr }

// SetCar mutates the car of a Pair in place (set-car!).
func (v *Value) SetCar(car *Value) { v.car = car }

// SetCdr mutates the cdr of a Pair in place (set-cdr!).
func (v *Value) SetCdr(cdr *Value) { v.cdr = cdr }

// Params returns a Compound procedure's parameter list.
func (v *Value) Params() *Value { return v.car }

// Body returns a Compound procedure's body list.
func (v *Value) Body() *Value { return v.cdr.car }

// Closure returns a Compound or Compiled procedure's captured environment.
func (v *Value) Closure() *Value {
	if v.Kind == KindCompound {
		return v.cdr.cdr
	}
	return v.cdr
}

// Entry returns a Compiled procedure's entry label cell.
func (v *Value) Entry() *Value { return v.car }

// Frame returns an Environment's innermost frame (a pair-list of records).
func (v *Value) Frame() *Value { return v.car }

// Parent returns an Environment's enclosing environment, or nil at the
// global environment.
func (v *Value) Parent() *Value { return v.cdr }

// SetFrame mutates an Environment's innermost frame in place.
func (v *Value) SetFrame(frame *Value) { v.car = frame }

// PrimitiveName returns a Primitive procedure's host-visible name.
func (v *Value) PrimitiveName() string { return v.name }

// PrimitiveFunc returns the Go function a Primitive procedure invokes.
func (v *Value) PrimitiveFunc() PrimitiveFunc { return v.fn }

// IsNil reports whether v is the empty-list singleton.
func (v *Value) IsNil() bool { return v == nil || v.Kind == KindNil }

// IsTruthy implements the single fixed truthiness invariant: only the
// literal false Bool is falsy; everything else, including 0, "", and (),
// is truthy.
func (v *Value) IsTruthy() bool {
	return !(v != nil && v.Kind == KindBool && !v.truth)
}

// isCompound reports whether a Value's Kind carries car/cdr children that
// the garbage collector must trace and the pool importer/exporter must
// recurse into.
func isCompound(k Kind) bool {
	switch k {
	case KindPair, KindEnv, KindCompound, KindCompiled,
		KindRegister, KindLabel, KindOp, KindInstruction:
		return true
	default:
		return false
	}
}
