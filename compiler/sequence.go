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

// Package compiler translates parsed expressions into register-machine
// instruction sequences annotated with the registers they need (read
// before writing) and modify (may write), per spec §4.6.
package compiler

import "github.com/dn47h/schemevm/code"

// Seq is an instruction sequence plus its register-usage metadata.
type Seq struct {
	Instructions []code.Instruction
	Needed       map[string]bool
	Modified     map[string]bool
}

func regSet(regs ...string) map[string]bool {
	s := make(map[string]bool, len(regs))
	for _, r := range regs {
		s[r] = true
	}
	return s
}

func emptySeq() Seq {
	return Seq{Needed: map[string]bool{}, Modified: map[string]bool{}}
}

func seqOf(needed, modified []string, instrs ...code.Instruction) Seq {
	return Seq{Instructions: instrs, Needed: regSet(needed...), Modified: regSet(modified...)}
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for r := range a {
		out[r] = true
	}
	for r := range b {
		out[r] = true
	}
	return out
}

func without(a map[string]bool, r string) map[string]bool {
	out := make(map[string]bool, len(a))
	for k := range a {
		if k != r {
			out[k] = true
		}
	}
	return out
}

// minus returns a \ b.
func minus(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a))
	for k := range a {
		if !b[k] {
			out[k] = true
		}
	}
	return out
}

func withReg(a map[string]bool, r string) map[string]bool {
	out := make(map[string]bool, len(a)+1)
	for k := range a {
		out[k] = true
	}
	out[r] = true
	return out
}

func concat(seqs ...[]code.Instruction) []code.Instruction {
	var out []code.Instruction
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// appendSeq concatenates a then b: b no longer needs what a already
// modified, since a's code runs first.
func appendSeq(a, b Seq) Seq {
	return Seq{
		Instructions: concat(a.Instructions, b.Instructions),
		Needed:       union(a.Needed, minus(b.Needed, a.Modified)),
		Modified:     union(a.Modified, b.Modified),
	}
}

// parallelSeq concatenates two mutually exclusive branches (the true/false
// arms of an if): both register sets simply union, since exactly one arm
// executes but either might.
func parallelSeq(a, b Seq) Seq {
	return Seq{
		Instructions: concat(a.Instructions, b.Instructions),
		Needed:       union(a.Needed, b.Needed),
		Modified:     union(a.Modified, b.Modified),
	}
}

// tackOn concatenates a then b but ignores b's register-usage metadata
// entirely, for appending a lambda's body after the jump that skips it.
func tackOn(a, b Seq) Seq {
	return Seq{
		Instructions: concat(a.Instructions, b.Instructions),
		Needed:       a.Needed,
		Modified:     a.Modified,
	}
}

// preserving wraps a in save/restore of every register in regs that a
// modifies and b subsequently needs, then appends b. This is the
// compiler's only mechanism for protecting a register across two
// sub-sequences compiled independently (spec §4.6).
func preserving(regs []string, a, b Seq) Seq {
	if len(regs) == 0 {
		return appendSeq(a, b)
	}
	r, rest := regs[0], regs[1:]
	if a.Modified[r] && b.Needed[r] {
		wrapped := Seq{
			Instructions: concat([]code.Instruction{code.NewSave(r)}, a.Instructions, []code.Instruction{code.NewRestore(r)}),
			Needed:       withReg(a.Needed, r),
			Modified:     without(a.Modified, r),
		}
		return preserving(rest, wrapped, b)
	}
	return preserving(rest, a, b)
}
