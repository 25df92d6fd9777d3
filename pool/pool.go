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

package pool

import "github.com/pkg/errors"

// Pool is the managed heap: a singly-linked chain of every live Value, a
// generation counter used for mark-and-sweep tracing, and a set of
// externally registered GC roots. A Pool is not safe for concurrent use;
// the runtime is single-threaded (see the machine package).
type Pool struct {
	chain *Value // dummy head
	roots []*Value
	gen   uint64
	size  int
}

// New creates an empty Pool at generation 1.
func New() *Pool {
	return &Pool{
		chain: &Value{Kind: KindNil, gen: 0},
		gen:   1,
	}
}

// Size returns the number of Values currently owned by the pool.
func (p *Pool) Size() int { return p.size }

// Generation returns the pool's current generation counter.
func (p *Pool) Generation() uint64 { return p.gen }

func (p *Pool) link(v *Value) *Value {
	v.gen = p.gen
	v.next = p.chain.next
	p.chain.next = v
	p.size++
	return v
}

// NewNumber allocates a Number Value.
func (p *Pool) NewNumber(n float64) *Value {
	return p.link(&Value{Kind: KindNumber, number: n})
}

// NewSymbol allocates a Symbol Value. Equal symbols are not required to
// share storage; this pool does not intern.
func (p *Pool) NewSymbol(name string) *Value {
	return p.link(&Value{Kind: KindSymbol, text: name})
}

// NewString allocates a String Value.
func (p *Pool) NewString(s string) *Value {
	return p.link(&Value{Kind: KindString, text: s})
}

// NewBool allocates a Bool Value.
func (p *Pool) NewBool(truth bool) *Value {
	return p.link(&Value{Kind: KindBool, truth: truth})
}

// Nil returns an empty-list Value. It is not pool-owned (it never holds
// children). Each call allocates a fresh Value of Kind KindNil; the runtime
// recognises the empty list by its Kind, not by pointer identity.
func (p *Pool) Nil() *Value {
	return &Value{Kind: KindNil}
}

// NewError allocates an Error Value with a formatted message.
func (p *Pool) NewError(format string, args ...interface{}) *Value {
	return p.link(&Value{Kind: KindError, text: errors.Errorf(format, args...).Error()})
}

// NewInfo allocates an Info Value with a formatted message.
func (p *Pool) NewInfo(format string, args ...interface{}) *Value {
	return p.link(&Value{Kind: KindInfo, text: errors.Errorf(format, args...).Error()})
}

// NewPair allocates a Pair from two already pool-owned (or nil) children.
func (p *Pool) NewPair(car, cdr *Value) *Value {
	return p.link(&Value{Kind: KindPair, car: car, cdr: cdr})
}

// NewCompound allocates a compound (lambda) procedure.
func (p *Pool) NewCompound(params, body, env *Value) *Value {
	return p.link(&Value{Kind: KindCompound, car: params, cdr: p.NewPair(body, env)})
}

// NewCompiled allocates a compiled procedure from an entry label cell and a
// captured environment.
func (p *Pool) NewCompiled(entry, env *Value) *Value {
	return p.link(&Value{Kind: KindCompiled, car: entry, cdr: env})
}

// NewPrimitive allocates a host-implemented primitive procedure.
func (p *Pool) NewPrimitive(name string, fn PrimitiveFunc) *Value {
	return p.link(&Value{Kind: KindPrimitive, name: name, fn: fn})
}

// NewEnv allocates a fresh, empty environment frame with the given parent
// (nil for the global environment).
func (p *Pool) NewEnv(parent *Value) *Value {
	return p.link(&Value{Kind: KindEnv, car: nil, cdr: parent})
}

// newInternal allocates one of the machine-internal compound kinds
// (register/label/op/instruction cells). Exported via the machine package's
// use of the pool, never constructed by primitives or the parser.
func (p *Pool) newInternal(kind Kind, car, cdr *Value) *Value {
	return p.link(&Value{Kind: kind, car: car, cdr: cdr})
}

// NewRegister allocates a machine register cell (current contents, name).
func (p *Pool) NewRegister(contents *Value, name string) *Value {
	return p.newInternal(KindRegister, contents, p.NewSymbol(name))
}

// NewLabel allocates a machine label cell (resolved position, name).
func (p *Pool) NewLabel(position *Value, name string) *Value {
	return p.newInternal(KindLabel, position, p.NewSymbol(name))
}

// NewOp allocates a machine operation binding cell (bound primitive, name).
func (p *Pool) NewOp(bound *Value, name string) *Value {
	return p.newInternal(KindOp, bound, p.NewSymbol(name))
}

// NewInstruction allocates a decoded machine instruction cell (opaque
// payload car, next-instruction link cdr).
func (p *Pool) NewInstruction(car, cdr *Value) *Value {
	return p.newInternal(KindInstruction, car, cdr)
}

// RegisterRoot pins v so that Collect never reclaims it or anything
// reachable from it. Double-registering the same root is a programming
// error and panics, matching the "programming error" failure mode in
// spec §4.1.
func (p *Pool) RegisterRoot(v *Value) {
	for _, r := range p.roots {
		if r == v {
			panic("pool: root already registered")
		}
	}
	p.roots = append(p.roots, v)
}

// UnregisterRoot unpins a previously registered root.
func (p *Pool) UnregisterRoot(v *Value) {
	for i, r := range p.roots {
		if r == v {
			p.roots = append(p.roots[:i], p.roots[i+1:]...)
			return
		}
	}
	panic("pool: root not registered")
}

// mark stamps v and everything reachable from it with the pool's current
// generation. A Value already bearing the current generation is skipped,
// which both avoids redundant work and cuts cycles.
func (p *Pool) mark(v *Value) {
	if v == nil || v.Kind == KindNil || v.gen == p.gen {
		return
	}
	v.gen = p.gen
	if isCompound(v.Kind) {
		p.mark(v.car)
		p.mark(v.cdr)
	}
}

// Collect runs one mark-and-sweep pass: increment the generation, mark from
// every registered root, then sweep the chain freeing every Value whose
// generation fell behind.
func (p *Pool) Collect() {
	p.gen++
	for _, root := range p.roots {
		p.mark(root)
	}
	prev := p.chain
	curr := p.chain.next
	for curr != nil {
		if curr.gen == p.gen {
			prev = curr
			curr = curr.next
		} else {
			prev.next = curr.next
			curr.next = nil
			curr.car, curr.cdr = nil, nil
			p.size--
			curr = prev.next
		}
	}
}

// importCopy deep-clones source into the pool, recording each copied
// source Value in seen (source -> copy) as its forwarding entry, so that
// sharing is preserved and cycles are tolerated in one pass. The source
// graph itself is not modified.
func (p *Pool) importCopy(source *Value, seen map[*Value]*Value) *Value {
	if source == nil || source.Kind == KindNil {
		return source
	}
	if dest, ok := seen[source]; ok {
		return dest
	}
	dest := &Value{
		Kind:   source.Kind,
		number: source.number,
		text:   source.text,
		truth:  source.truth,
		name:   source.name,
		fn:     source.fn,
	}
	seen[source] = dest
	p.link(dest)
	if isCompound(source.Kind) {
		dest.car = p.importCopy(source.car, seen)
		dest.cdr = p.importCopy(source.cdr, seen)
	}
	return dest
}

// Import deep-clones an externally-owned Value graph into the pool so that
// no pool-owned Value ever references a non-pool Value. Sharing within the
// source graph is preserved; cycles are tolerated.
func (p *Pool) Import(source *Value) *Value {
	return p.importCopy(source, map[*Value]*Value{})
}

// exportCopy is the mirror of importCopy: it walks a pool-owned graph and
// produces a detached, unowned copy that the caller exclusively owns.
func (p *Pool) exportCopy(source *Value, seen map[*Value]*Value) *Value {
	if source == nil || source.Kind == KindNil {
		return source
	}
	if dest, ok := seen[source]; ok {
		return dest
	}
	dest := &Value{
		Kind:   source.Kind,
		number: source.number,
		text:   source.text,
		truth:  source.truth,
		name:   source.name,
		fn:     source.fn,
	}
	seen[source] = dest
	if isCompound(source.Kind) {
		dest.car = p.exportCopy(source.car, seen)
		dest.cdr = p.exportCopy(source.cdr, seen)
	}
	return dest
}

// Export produces an unowned deep copy of a pool-owned Value graph.
func (p *Pool) Export(source *Value) *Value {
	return p.exportCopy(source, map[*Value]*Value{})
}
