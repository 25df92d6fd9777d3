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

import (
	"strconv"
	"strings"
)

// cycleMark is printed in place of a pair already on the current printing
// path, so that Print on a cyclic graph terminates.
const cycleMark = "<cycle>"

// indentSpaces is the width of one Pretty indentation level.
const indentSpaces = 4

// Print renders v to its canonical s-expression text. parse(Print(v)) == v
// up to whitespace, for every Value the parser can produce (spec §8).
func Print(v *Value) string {
	var b strings.Builder
	printValue(&b, v, map[*Value]bool{})
	return b.String()
}

func printValue(b *strings.Builder, v *Value, onPath map[*Value]bool) {
	if v == nil || v.Kind == KindNil {
		b.WriteString("()")
		return
	}
	switch v.Kind {
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.number, 'g', -1, 64))
	case KindSymbol:
		b.WriteString(v.text)
	case KindString:
		b.WriteByte('"')
		b.WriteString(escapeString(v.text))
		b.WriteByte('"')
	case KindBool:
		if v.truth {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindError:
		b.WriteString("#[error ")
		b.WriteString(v.text)
		b.WriteByte(']')
	case KindInfo:
		b.WriteString("#[info ")
		b.WriteString(v.text)
		b.WriteByte(']')
	case KindPair:
		if onPath[v] {
			b.WriteString(cycleMark)
			return
		}
		onPath[v] = true
		b.WriteByte('(')
		printPairBody(b, v, onPath)
		b.WriteByte(')')
		delete(onPath, v)
	case KindPrimitive:
		b.WriteString("#[primitive ")
		b.WriteString(v.name)
		b.WriteByte(']')
	case KindCompound:
		b.WriteString("#[compound-procedure]")
	case KindCompiled:
		b.WriteString("#[compiled-procedure]")
	case KindEnv:
		b.WriteString("#[environment]")
	default:
		b.WriteString("#[")
		b.WriteString(v.Kind.String())
		b.WriteByte(']')
	}
}

func printPairBody(b *strings.Builder, v *Value, onPath map[*Value]bool) {
	printValue(b, v.car, onPath)
	switch {
	case v.cdr == nil || v.cdr.Kind == KindNil:
		// proper end of list: nothing more to print
	case v.cdr.Kind == KindPair:
		b.WriteByte(' ')
		if onPath[v.cdr] {
			b.WriteString(cycleMark)
			return
		}
		printPairBody(b, v.cdr, onPath)
	default:
		b.WriteString(" . ")
		printValue(b, v.cdr, onPath)
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pretty renders v as an indented multi-line s-expression, for the `pretty`
// primitive (spec §4.7).
func Pretty(v *Value) string {
	var b strings.Builder
	prettyValue(&b, v, 0, map[*Value]bool{})
	return b.String()
}

func prettyValue(b *strings.Builder, v *Value, depth int, onPath map[*Value]bool) {
	if v == nil || v.Kind != KindPair {
		printValue(b, v, onPath)
		return
	}
	if onPath[v] {
		b.WriteString(cycleMark)
		return
	}
	onPath[v] = true
	b.WriteByte('(')
	inner := depth + 1
	item := v
	first := true
	for item != nil && item.Kind == KindPair {
		if !first {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", inner*indentSpaces))
		}
		first = false
		prettyValue(b, item.car, inner, onPath)
		if item.cdr != nil && item.cdr.Kind == KindPair && onPath[item.cdr] {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", inner*indentSpaces))
			b.WriteString(cycleMark)
			item = nil
			break
		}
		item = item.cdr
	}
	if item != nil && item.Kind != KindNil {
		b.WriteString(" . ")
		printValue(b, item, onPath)
	}
	b.WriteByte(')')
	delete(onPath, v)
}

// Equal implements the `equal?` primitive: structural equality (numbers by
// value, symbols/strings by text, pairs recursively, everything else by
// identity-of-kind-and-payload).
func Equal(a, b *Value) bool {
	an, bn := a == nil || a.Kind == KindNil, b == nil || b.Kind == KindNil
	if an || bn {
		return an && bn
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.number == b.number
	case KindSymbol:
		return a.text == b.text
	case KindString:
		return a.text == b.text
	case KindBool:
		return a.truth == b.truth
	case KindError, KindInfo:
		return a.text == b.text
	case KindPair:
		return Equal(a.car, b.car) && Equal(a.cdr, b.cdr)
	default:
		return a == b
	}
}
