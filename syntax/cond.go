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

// IsCond reports `(cond (p1 e1...) ... (else ee...))`.
func IsCond(exp *pool.Value) bool { return IsTaggedList(exp, "cond") }

// CheckCond validates that every clause is a non-empty list and that
// `else`, if present, only appears as the final clause's test.
func CheckCond(exp *pool.Value) error {
	clauses := pool.ToSlice(exp.Cdr())
	for i, clause := range clauses {
		if pool.Length(clause) < 1 {
			return malformed("cond clause", exp)
		}
		test := clause.Car()
		if test.Kind == pool.KindSymbol && test.Symbol() == "else" && i != len(clauses)-1 {
			return malformed("cond: else must be the last clause", exp)
		}
	}
	return nil
}

func isCondElseClause(clause *pool.Value) bool {
	test := clause.Car()
	return test.Kind == pool.KindSymbol && test.Symbol() == "else"
}

func condClausePredicate(clause *pool.Value) *pool.Value { return clause.Car() }
func condClauseActions(clause *pool.Value) *pool.Value   { return clause.Cdr() }

// TransformCond desugars a cond form into nested `if` expressions, per
// spec §4.3: absent `else`, the final alternative is the false literal.
func TransformCond(p *pool.Pool, exp *pool.Value) *pool.Value {
	return expandCondClauses(p, pool.ToSlice(exp.Cdr()))
}

func expandCondClauses(p *pool.Pool, clauses []*pool.Value) *pool.Value {
	if len(clauses) == 0 {
		return p.NewBool(false)
	}
	first := clauses[0]
	rest := clauses[1:]
	if isCondElseClause(first) {
		return TransformSequence(p, condClauseActions(first))
	}
	return MakeIf(
		p,
		condClausePredicate(first),
		TransformSequence(p, condClauseActions(first)),
		expandCondClauses(p, rest),
	)
}
