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
	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

// compileSelfEvaluating handles both self-evaluating atoms and the text of
// a quoted form (spec §4.6).
func (c *Compiler) compileSelfEvaluating(exp *pool.Value, target, linkage string) Seq {
	seq := seqOf(nil, []string{target}, code.NewAssignCopy(target, code.Const(exp)))
	return endWithLinkage(seq, linkage)
}

func (c *Compiler) compileVariable(exp *pool.Value, target, linkage string) Seq {
	seq := seqOf([]string{"env"}, []string{target},
		code.NewAssignCall(target, "lookup-variable-value", code.Const(exp), code.Reg("env")))
	return endWithLinkage(seq, linkage)
}

func (c *Compiler) compileAssignment(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	return c.compileBinding(p, syntax.AssignmentVariable(exp), syntax.AssignmentValue(exp), "set-variable-value!", target, linkage)
}

func (c *Compiler) compileDefinition(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	return c.compileBinding(p, syntax.DefinitionVariable(exp), syntax.DefinitionValue(p, exp), "define-variable!", target, linkage)
}

func (c *Compiler) compileBinding(p *pool.Pool, name, value *pool.Value, op, target, linkage string) (Seq, error) {
	valueSeq, err := c.Compile(p, value, "val", LinkageNext)
	if err != nil {
		return Seq{}, err
	}
	bindSeq := seqOf([]string{"env", "val"}, []string{target},
		code.NewAssignCall(target, op, code.Const(name), code.Reg("val"), code.Reg("env")))
	combined := preserving([]string{"env"}, valueSeq, bindSeq)
	return endWithLinkage(combined, linkage), nil
}

func (c *Compiler) compileIf(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	predSeq, err := c.Compile(p, syntax.IfPredicate(exp), "val", LinkageNext)
	if err != nil {
		return Seq{}, err
	}

	falseLabel := c.newLabel("false-branch")
	consequentLinkage := linkage
	afterLabel := ""
	if linkage == LinkageNext {
		afterLabel = c.newLabel("after-if")
		consequentLinkage = afterLabel
	}

	trueSeq, err := c.Compile(p, syntax.IfConsequent(exp), target, consequentLinkage)
	if err != nil {
		return Seq{}, err
	}
	falseSeq, err := c.Compile(p, syntax.IfAlternative(p, exp), target, linkage)
	if err != nil {
		return Seq{}, err
	}

	branchSeq := seqOf([]string{"val"}, nil, code.NewBranch(falseLabel, "false?", code.Reg("val")))
	falseArm := appendSeq(seqOf(nil, nil, code.NewLabel(falseLabel)), falseSeq)
	arms := appendSeq(branchSeq, parallelSeq(trueSeq, falseArm))
	if afterLabel != "" {
		arms = appendSeq(arms, seqOf(nil, nil, code.NewLabel(afterLabel)))
	}

	return preserving([]string{"env", "continue"}, predSeq, arms), nil
}

// compileSequence compiles a begin/lambda body: every expression but the
// last targets val with next linkage, the last gets the outer target and
// linkage.
func (c *Compiler) compileSequence(p *pool.Pool, seq *pool.Value, target, linkage string) (Seq, error) {
	items := pool.ToSlice(seq)
	if len(items) == 0 {
		return emptySeq(), nil
	}
	if len(items) == 1 {
		return c.Compile(p, items[0], target, linkage)
	}
	firstSeq, err := c.Compile(p, items[0], "val", LinkageNext)
	if err != nil {
		return Seq{}, err
	}
	restSeq, err := c.compileSequence(p, p.FromSlice(items[1:]), target, linkage)
	if err != nil {
		return Seq{}, err
	}
	return preserving([]string{"env", "continue"}, firstSeq, restSeq), nil
}

func (c *Compiler) compileLambda(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	procEntry := c.newLabel("proc-entry")
	lambdaLinkage := linkage
	afterLabel := ""
	if linkage == LinkageNext {
		afterLabel = c.newLabel("after-lambda")
		lambdaLinkage = afterLabel
	}

	makeProcSeq := seqOf([]string{"env"}, []string{target},
		code.NewAssignCall(target, "make-compiled-procedure", code.Lbl(procEntry), code.Reg("env")))
	makeProcSeq = endWithLinkage(makeProcSeq, lambdaLinkage)

	bodySeq, err := c.compileSequence(p, syntax.LambdaBody(exp), "val", LinkageReturn)
	if err != nil {
		return Seq{}, err
	}
	entrySeq := seqOf([]string{"proc", "argl"}, []string{"env"},
		code.NewLabel(procEntry),
		code.NewAssignCall("env", "compiled-environment", code.Reg("proc")),
		code.NewAssignCall("env", "extend-environment", code.Const(syntax.LambdaParameters(exp)), code.Reg("argl"), code.Reg("env")),
	)

	full := tackOn(makeProcSeq, appendSeq(entrySeq, bodySeq))
	if afterLabel != "" {
		full = appendSeq(full, seqOf(nil, nil, code.NewLabel(afterLabel)))
	}
	return full, nil
}

func (c *Compiler) compileAndOr(p *pool.Pool, exprs *pool.Value, target, linkage string, isAnd bool) (Seq, error) {
	items := pool.ToSlice(exprs)

	if len(items) == 0 {
		seq := seqOf(nil, []string{target}, code.NewAssignCopy(target, code.Const(p.NewBool(isAnd))))
		return endWithLinkage(seq, linkage), nil
	}

	family := "after-and"
	testOp := "false?"
	if !isAnd {
		family = "after-or"
		testOp = "true?"
	}
	afterLabel := c.newLabel(family)

	combined := emptySeq()
	for i, item := range items {
		itemSeq, err := c.Compile(p, item, "val", LinkageNext)
		if err != nil {
			return Seq{}, err
		}
		if i < len(items)-1 {
			branch := seqOf([]string{"val"}, nil, code.NewBranch(afterLabel, testOp, code.Reg("val")))
			itemSeq = preserving([]string{"env"}, itemSeq, branch)
		}
		combined = preserving([]string{"env"}, combined, itemSeq)
	}

	tail := emptySeq()
	if target != "val" {
		tail = seqOf([]string{"val"}, []string{target}, code.NewAssignCopy(target, code.Reg("val")))
	}
	tail = endWithLinkage(tail, linkage)
	tail = appendSeq(seqOf(nil, nil, code.NewLabel(afterLabel)), tail)

	return appendSeq(combined, tail), nil
}

func (c *Compiler) compileApplication(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	operatorSeq, err := c.Compile(p, syntax.Operator(exp), "proc", LinkageNext)
	if err != nil {
		return Seq{}, err
	}
	argsSeq, err := c.compileOperands(p, syntax.Operands(exp))
	if err != nil {
		return Seq{}, err
	}
	opAndArgs := preserving([]string{"env", "continue"}, operatorSeq, argsSeq)
	callSeq := c.compileProcedureCall(p, target, linkage)
	return preserving([]string{"proc", "continue"}, opAndArgs, callSeq), nil
}

func (c *Compiler) compileOperands(p *pool.Pool, operands *pool.Value) (Seq, error) {
	seq := seqOf(nil, []string{"argl"}, code.NewAssignCall("argl", "make-empty-arglist"))
	for _, operand := range pool.ToSlice(operands) {
		operandSeq, err := c.Compile(p, operand, "val", LinkageNext)
		if err != nil {
			return Seq{}, err
		}
		adjoinSeq := seqOf([]string{"val", "argl"}, []string{"argl"},
			code.NewAssignCall("argl", "adjoin-arg", code.Reg("val"), code.Reg("argl")))
		operandAndAdjoin := preserving([]string{"argl"}, operandSeq, adjoinSeq)
		seq = preserving([]string{"env"}, seq, operandAndAdjoin)
	}
	return seq, nil
}

// compileProcedureCall tests proc's type and dispatches to the primitive or
// compiled-procedure calling convention, falling through to a runtime error
// for anything else (spec §4.6.1).
func (c *Compiler) compileProcedureCall(p *pool.Pool, target, linkage string) Seq {
	primitiveBranch := c.newLabel("primitive-branch")
	compiledBranch := c.newLabel("compiled-branch")
	afterCall := c.newLabel("after-call")

	effectiveLinkage := linkage
	if linkage == LinkageNext {
		effectiveLinkage = afterCall
	}

	dispatch := seqOf([]string{"proc"}, nil,
		code.NewBranch(primitiveBranch, "primitive-procedure?", code.Reg("proc")),
		code.NewBranch(compiledBranch, "compiled-procedure?", code.Reg("proc")),
		code.NewPerform("signal-error", code.Const(p.NewString("can't apply %s")), code.Reg("proc")),
		code.NewGoto(code.Lbl(afterCall)),
	)

	primitiveSeq := seqOf([]string{"proc", "argl"}, []string{target},
		code.NewAssignCall(target, "apply-primitive-procedure", code.Reg("proc"), code.Reg("argl")))
	primitiveSeq = endWithLinkage(primitiveSeq, effectiveLinkage)
	primitiveArm := appendSeq(seqOf(nil, nil, code.NewLabel(primitiveBranch)), primitiveSeq)

	compiledArm := appendSeq(seqOf(nil, nil, code.NewLabel(compiledBranch)), c.compileCompiledArm(target, linkage, effectiveLinkage))

	afterCallSeq := seqOf(nil, nil, code.NewLabel(afterCall))

	return appendSeq(dispatch, appendSeq(primitiveArm, appendSeq(compiledArm, afterCallSeq)))
}

// compileCompiledArm implements the three sub-cases of the compiled-branch
// calling convention (spec §4.6.1): a tail call, a call whose result lands
// directly in val, or a call whose result must be copied to some other
// target register after returning.
func (c *Compiler) compileCompiledArm(target, linkage, effectiveLinkage string) Seq {
	if linkage == LinkageReturn {
		return seqOf([]string{"proc"}, []string{"val"},
			code.NewAssignCall("val", "compiled-entry", code.Reg("proc")),
			code.NewGoto(code.Reg("val")),
		)
	}
	if target == "val" {
		return seqOf([]string{"proc"}, []string{"continue", "val"},
			code.NewAssignCopy("continue", code.Lbl(effectiveLinkage)),
			code.NewAssignCall("val", "compiled-entry", code.Reg("proc")),
			code.NewGoto(code.Reg("val")),
		)
	}
	returnLabel := c.newLabel("proc-return")
	return seqOf([]string{"proc"}, []string{"continue", "val", target},
		code.NewAssignCopy("continue", code.Lbl(returnLabel)),
		code.NewAssignCall("val", "compiled-entry", code.Reg("proc")),
		code.NewGoto(code.Reg("val")),
		code.NewLabel(returnLabel),
		code.NewAssignCopy(target, code.Reg("val")),
		code.NewGoto(code.Lbl(effectiveLinkage)),
	)
}

func (c *Compiler) compileApply(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	operatorSeq, err := c.Compile(p, syntax.ApplyOperator(exp), "proc", LinkageNext)
	if err != nil {
		return Seq{}, err
	}
	argsSeq, err := c.Compile(p, syntax.ApplyArguments(exp), "argl", LinkageNext)
	if err != nil {
		return Seq{}, err
	}
	opAndArgs := preserving([]string{"env", "continue"}, operatorSeq, argsSeq)
	callSeq := c.compileProcedureCall(p, target, linkage)
	return preserving([]string{"proc", "continue"}, opAndArgs, callSeq), nil
}

// compileEval compiles an (eval expr) form to a jump into the loaded
// evaluator's eval-dispatch entry point, refusing to compile at all if no
// evaluator declaring that label has been loaded.
func (c *Compiler) compileEval(p *pool.Pool, exp *pool.Value, target, linkage string) (Seq, error) {
	if !c.knownLabels["eval-dispatch"] {
		return Seq{}, errEvalDispatchUndefined
	}

	expSeq, err := c.Compile(p, syntax.EvalExpression(exp), "exp", LinkageNext)
	if err != nil {
		return Seq{}, err
	}

	effectiveLinkage := linkage
	afterLabel := ""
	if linkage == LinkageNext {
		afterLabel = c.newLabel("after-eval")
		effectiveLinkage = afterLabel
	}

	var dispatch Seq
	switch {
	case linkage == LinkageReturn:
		dispatch = seqOf([]string{"env", "continue"}, nil, code.NewGoto(code.Lbl("eval-dispatch")))
	case target == "val":
		dispatch = seqOf([]string{"env"}, []string{"continue", "val"},
			code.NewAssignCopy("continue", code.Lbl(effectiveLinkage)),
			code.NewGoto(code.Lbl("eval-dispatch")),
		)
	default:
		returnLabel := c.newLabel("after-eval")
		dispatch = seqOf([]string{"env"}, []string{"continue", "val", target},
			code.NewAssignCopy("continue", code.Lbl(returnLabel)),
			code.NewGoto(code.Lbl("eval-dispatch")),
			code.NewLabel(returnLabel),
			code.NewAssignCopy(target, code.Reg("val")),
			code.NewGoto(code.Lbl(effectiveLinkage)),
		)
	}
	if afterLabel != "" {
		dispatch = appendSeq(dispatch, seqOf(nil, nil, code.NewLabel(afterLabel)))
	}

	return preserving([]string{"env"}, expSeq, dispatch), nil
}
