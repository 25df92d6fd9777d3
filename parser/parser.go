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

// Package parser reads UTF-8 Scheme source text and produces a pool-owned
// top-level pair-list of parsed forms. It is an external collaborator to
// the core (spec §6): it has no dependency on the machine or compiler.
package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/pool"
)

const (
	symbolChars     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_+-*/%^\\=<>!&|?.#"
	whitespaceChars = " \t\r\n\v"
)

type scanner struct {
	p   *pool.Pool
	src []rune
	pos int
}

// Parse reads all top-level forms out of src and returns them as a
// pool-owned proper list. A malformed form anywhere in src aborts parsing
// with a descriptive error; this is a host-level error (spec §7 "Parsing"
// errors are reported, not fatal — callers should catch it and keep going,
// e.g. the REPL reads the next line instead of exiting).
func Parse(p *pool.Pool, src string) (*pool.Value, error) {
	s := &scanner{p: p, src: []rune(src)}
	items, err := s.parseTopLevel()
	if err != nil {
		return nil, err
	}
	return p.FromSlice(items), nil
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }
func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// parseTopLevel scans forms until input is exhausted. A stray ')' at this
// level is always an error, and there is no dotted-pair notation outside
// of a parenthesized list.
func (s *scanner) parseTopLevel() ([]*pool.Value, error) {
	var items []*pool.Value
	for {
		if s.eof() {
			return items, nil
		}
		c := s.peek()
		switch {
		case strings.ContainsRune(whitespaceChars, c):
			s.pos++
		case c == ';':
			for !s.eof() && s.peek() != '\n' {
				s.pos++
			}
		case c == ')':
			return nil, errors.New("premature )")
		default:
			v, err := s.parseForm()
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
	}
}

func (s *scanner) parseForm() (*pool.Value, error) {
	c := s.peek()
	switch {
	case c == '(':
		s.pos++
		return s.parseParenList()
	case c == '\'':
		s.pos++
		return s.parseQuoted()
	case c == '"':
		return s.parseString()
	case strings.ContainsRune(symbolChars, c):
		return s.parseSymbolOrNumber()
	default:
		return nil, errors.Errorf("unexpected symbol %q", string(c))
	}
}

// parseParenList scans the body of a "(" ... ")" form, handling the
// "(a . b)" improper-pair notation: a lone "." followed by exactly one more
// element and then the closing paren.
func (s *scanner) parseParenList() (*pool.Value, error) {
	var items []*pool.Value
	var tail *pool.Value
	sawDot := false
	for {
		if s.eof() {
			return nil, errors.New("missing )")
		}
		c := s.peek()
		switch {
		case strings.ContainsRune(whitespaceChars, c):
			s.pos++
		case c == ';':
			for !s.eof() && s.peek() != '\n' {
				s.pos++
			}
		case c == ')':
			s.pos++
			if sawDot && tail == nil {
				return nil, errors.New("unfollowed .")
			}
			if tail != nil {
				result := tail
				for i := len(items) - 1; i >= 0; i-- {
					result = s.p.NewPair(items[i], result)
				}
				return result, nil
			}
			return s.p.FromSlice(items), nil
		default:
			v, isDot, err := s.parseFormOrDot()
			if err != nil {
				return nil, err
			}
			if isDot {
				if sawDot || len(items) == 0 {
					return nil, errors.New("nothing before .")
				}
				sawDot = true
				continue
			}
			if sawDot {
				if tail != nil {
					return nil, errors.New(". followed by 2+ items")
				}
				tail = v
			} else {
				items = append(items, v)
			}
		}
	}
}

// parseFormOrDot parses one form, but recognizes a bare "." symbol as the
// dotted-pair separator rather than an ordinary symbol.
func (s *scanner) parseFormOrDot() (v *pool.Value, isDot bool, err error) {
	if s.peek() == '.' && s.dotIsSeparator() {
		s.pos++
		return nil, true, nil
	}
	v, err = s.parseForm()
	return v, false, err
}

// dotIsSeparator reports whether the '.' at the current position stands
// alone as the improper-list separator (followed by whitespace, ')', '('
// or end of input),
// as opposed to being the first character of a symbol or number like "."
// inside "3.14" or the symbol ".foo".
func (s *scanner) dotIsSeparator() bool {
	next := s.pos + 1
	if next >= len(s.src) {
		return true
	}
	c := s.src[next]
	return strings.ContainsRune(whitespaceChars, c) || c == ')' || c == '('
}

func (s *scanner) parseQuoted() (*pool.Value, error) {
	for !s.eof() && strings.ContainsRune(whitespaceChars, s.peek()) {
		s.pos++
	}
	if s.eof() {
		return nil, errors.New("unfollowed '")
	}
	quoted, err := s.parseForm()
	if err != nil {
		return nil, err
	}
	return s.p.NewPair(s.p.NewSymbol("quote"), s.p.NewPair(quoted, s.p.Nil())), nil
}

func (s *scanner) parseString() (*pool.Value, error) {
	start := s.pos
	s.pos++ // opening quote
	for {
		if s.eof() {
			return nil, errors.New("unterminated string")
		}
		if s.src[s.pos] == '"' && s.src[s.pos-1] != '\\' {
			s.pos++
			break
		}
		s.pos++
	}
	raw := string(s.src[start+1 : s.pos-1])
	return s.p.NewString(unescape(raw)), nil
}

func (s *scanner) parseSymbolOrNumber() (*pool.Value, error) {
	start := s.pos
	for !s.eof() && strings.ContainsRune(symbolChars, s.peek()) {
		s.pos++
	}
	tok := string(s.src[start:s.pos])
	switch tok {
	case "nil":
		return s.p.Nil(), nil
	case "true", "#t":
		return s.p.NewBool(true), nil
	case "false", "#f":
		return s.p.NewBool(false), nil
	}
	if isNumber(tok) {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Errorf("malformed number: %s", tok)
		}
		return s.p.NewNumber(n), nil
	}
	return s.p.NewSymbol(tok), nil
}

// isNumber ports the original scanner's number-shape check: digits with at
// most one dot and at most one exponent marker, a sign allowed only at the
// very start or right after the exponent marker, and at least one digit
// seen overall.
func isNumber(tok string) bool {
	digitSeen, expSeen, dotSeen := false, false, false
	for i, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digitSeen = true
		case r == '+' || r == '-':
			if i != 0 && !(tok[i-1] == 'e' || tok[i-1] == 'E') {
				return false
			}
		case r == 'e' || r == 'E':
			if expSeen || !digitSeen {
				return false
			}
			digitSeen = false
			expSeen = true
		case r == '.':
			if dotSeen || expSeen {
				return false
			}
			dotSeen = true
		default:
			return false
		}
	}
	return digitSeen
}

var escapeMap = map[rune]rune{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n',
	'r': '\r', 't': '\t', 'v': '\v', '"': '"',
	'0': 0, '\\': '\\',
}

func unescape(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			if rep, ok := escapeMap[runes[i+1]]; ok {
				b.WriteRune(rep)
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
