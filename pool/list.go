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

// ToSlice flattens a proper pair-list into a Go slice of its elements.
func ToSlice(list *Value) []*Value {
	var out []*Value
	for list != nil && list.Kind == KindPair {
		out = append(out, list.car)
		list = list.cdr
	}
	return out
}

// FromSlice builds a pool-owned proper pair-list from a Go slice, in order.
func (p *Pool) FromSlice(items []*Value) *Value {
	result := p.Nil()
	for i := len(items) - 1; i >= 0; i-- {
		result = p.NewPair(items[i], result)
	}
	return result
}

// Length returns the number of elements in a proper pair-list.
func Length(list *Value) int {
	n := 0
	for list != nil && list.Kind == KindPair {
		n++
		list = list.cdr
	}
	return n
}

// Append returns a freshly-consed pair-list containing lst1's elements
// followed by lst2 (which may itself be improper or even a single Value, to
// support building "rest"-parameter lists).
func (p *Pool) Append(lst1, lst2 *Value) *Value {
	items := ToSlice(lst1)
	result := lst2
	for i := len(items) - 1; i >= 0; i-- {
		result = p.NewPair(items[i], result)
	}
	return result
}
