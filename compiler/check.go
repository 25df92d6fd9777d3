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
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

// checkExpression walks the entire expression tree validating every
// special form's shape before any code is generated, so that the first
// syntax error anywhere in exp is reported instead of a partial compile
// (spec §4.6's "Syntax check").
func checkExpression(exp *pool.Value) error {
	switch {
	case syntax.IsSelfEvaluating(exp), syntax.IsVariable(exp):
		return nil

	case syntax.IsQuoted(exp):
		return syntax.CheckQuoted(exp)

	case syntax.IsAssignment(exp):
		if err := syntax.CheckAssignment(exp); err != nil {
			return err
		}
		return checkExpression(syntax.AssignmentValue(exp))

	case syntax.IsDefinition(exp):
		if err := syntax.CheckDefinition(exp); err != nil {
			return err
		}
		return checkBody(definitionBodyExprs(exp))

	case syntax.IsIf(exp):
		if err := syntax.CheckIf(exp); err != nil {
			return err
		}
		if err := checkExpression(syntax.IfPredicate(exp)); err != nil {
			return err
		}
		if err := checkExpression(syntax.IfConsequent(exp)); err != nil {
			return err
		}
		if rest := exp.Cdr().Cdr().Cdr(); rest != nil && rest.Kind == pool.KindPair {
			return checkExpression(rest.Car())
		}
		return nil

	case syntax.IsLambda(exp):
		if err := syntax.CheckLambda(exp); err != nil {
			return err
		}
		return checkBody(pool.ToSlice(syntax.LambdaBody(exp)))

	case syntax.IsLet(exp):
		if err := syntax.CheckLet(exp); err != nil {
			return err
		}
		for _, binding := range pool.ToSlice(exp.Cdr().Car()) {
			if err := checkExpression(binding.Cdr().Car()); err != nil {
				return err
			}
		}
		return checkBody(pool.ToSlice(exp.Cdr().Cdr()))

	case syntax.IsBegin(exp):
		return checkBody(pool.ToSlice(syntax.BeginActions(exp)))

	case syntax.IsCond(exp):
		if err := syntax.CheckCond(exp); err != nil {
			return err
		}
		for _, clause := range pool.ToSlice(exp.Cdr()) {
			if clause.Car().Kind != pool.KindSymbol || clause.Car().Symbol() != "else" {
				if err := checkExpression(clause.Car()); err != nil {
					return err
				}
			}
			if err := checkBody(pool.ToSlice(clause.Cdr())); err != nil {
				return err
			}
		}
		return nil

	case syntax.IsAnd(exp):
		return checkBody(pool.ToSlice(syntax.AndExpressions(exp)))

	case syntax.IsOr(exp):
		return checkBody(pool.ToSlice(syntax.OrExpressions(exp)))

	case syntax.IsEval(exp):
		if err := syntax.CheckEval(exp); err != nil {
			return err
		}
		return checkExpression(syntax.EvalExpression(exp))

	case syntax.IsApply(exp):
		if err := syntax.CheckApply(exp); err != nil {
			return err
		}
		if err := checkExpression(syntax.ApplyOperator(exp)); err != nil {
			return err
		}
		return checkExpression(syntax.ApplyArguments(exp))

	case syntax.IsApplication(exp):
		if err := checkExpression(syntax.Operator(exp)); err != nil {
			return err
		}
		return checkBody(pool.ToSlice(syntax.Operands(exp)))

	default:
		return nil
	}
}

func checkBody(exprs []*pool.Value) error {
	for _, e := range exprs {
		if err := checkExpression(e); err != nil {
			return err
		}
	}
	return nil
}

// definitionBodyExprs returns the sub-expressions a definition's value
// position is built from: the single value expression for `(define x v)`,
// or the lambda body expressions for `(define (f params...) body...)`.
func definitionBodyExprs(exp *pool.Value) []*pool.Value {
	target := exp.Cdr().Car()
	if target.Kind == pool.KindSymbol {
		return []*pool.Value{exp.Cdr().Cdr().Car()}
	}
	return pool.ToSlice(exp.Cdr().Cdr())
}
