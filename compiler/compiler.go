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

package compiler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

// errEvalDispatchUndefined is returned by compileEval when no evaluator
// declaring an eval-dispatch label has been loaded (spec §9's resolution
// of the eval/eval-dispatch open question: a compile-time error, not a
// run-time unbound-label failure).
var errEvalDispatchUndefined = errors.New("eval-dispatch is not defined; load an evaluator first")

// Compiler is the compile-time context: a label-name counter (spec §9
// calls out that this must be encapsulated in an object rather than a
// package-level global, so that concurrent or repeated compiles in the
// same process don't collide) and the set of labels the loaded evaluator
// kernel declares, consulted when compiling an `eval` form.
type Compiler struct {
	counter     int
	knownLabels map[string]bool
}

// New builds a Compiler. knownLabels should list every label the loaded
// evaluator program declares; pass nil if no evaluator is loaded.
func New(knownLabels map[string]bool) *Compiler {
	return &Compiler{knownLabels: knownLabels}
}

func (c *Compiler) newLabel(family string) string {
	c.counter++
	return fmt.Sprintf("%s%d", family, c.counter)
}

// Compile validates exp against the shape checkers in §4.3 and, if it
// passes, translates it to an instruction sequence targeting register
// target with the given linkage ("next", "return", or a label name).
func (c *Compiler) Compile(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	if err := checkExpression(exp); err != nil {
		return Seq{}, err
	}
	return c.compileExpression(p, exp, target, linkage)
}

func (c *Compiler) compileExpression(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	switch {
	case syntax.IsQuoted(exp):
		return c.compileSelfEvaluating(syntax.TextOfQuotation(exp), target, linkage), nil
	case syntax.IsSelfEvaluating(exp):
		return c.compileSelfEvaluating(exp, target, linkage), nil
	case syntax.IsVariable(exp):
		return c.compileVariable(exp, target, linkage), nil
	case syntax.IsAssignment(exp):
		return c.compileAssignment(p, exp, target, linkage)
	case syntax.IsDefinition(exp):
		return c.compileDefinition(p, exp, target, linkage)
	case syntax.IsIf(exp):
		return c.compileIf(p, exp, target, linkage)
	case syntax.IsLambda(exp):
		return c.compileLambda(p, exp, target, linkage)
	case syntax.IsLet(exp):
		return c.Compile(p, syntax.TransformLet(p, exp), target, linkage)
	case syntax.IsBegin(exp):
		return c.compileSequence(p, syntax.BeginActions(exp), target, linkage)
	case syntax.IsCond(exp):
		return c.Compile(p, syntax.TransformCond(p, exp), target, linkage)
	case syntax.IsAnd(exp):
		return c.compileAndOr(p, syntax.AndExpressions(exp), target, linkage, true)
	case syntax.IsOr(exp):
		return c.compileAndOr(p, syntax.OrExpressions(exp), target, linkage, false)
	case syntax.IsEval(exp):
		return c.compileEval(p, exp, target, linkage)
	case syntax.IsApply(exp):
		return c.compileApply(p, exp, target, linkage)
	case syntax.IsApplication(exp):
		return c.compileApplication(p, exp, target, linkage)
	default:
		return Seq{}, errors.Errorf("unrecognized expression: %s", pool.Print(exp))
	}
}
