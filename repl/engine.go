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

package repl

import (
	"fmt"
	"io"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/compiler"
	"github.com/dn47h/schemevm/env"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/primitives"
	"github.com/pkg/errors"
)

// EngineConfig builds an Engine: startup paths shared by the interactive
// REPL and the non-interactive `schemevm run` subcommand.
type EngineConfig struct {
	EvaluatorPath string
	LibraryDir    string
	TestsDir      string
	TraceLevel    int
	Out           io.Writer
}

// Engine is the compile-and-run core shared by the interactive REPL and
// `schemevm run`: a pool and global environment carried across top-level
// forms, an evaluator instruction set and compiler fixed for its lifetime,
// and the fresh-machine-per-form discipline described on Eval.
type Engine struct {
	pool       *pool.Pool
	compiler   *compiler.Compiler
	evaluator  []code.Instruction
	global     *pool.Value
	traceLevel int
	out        io.Writer
	libraryDir string
	testsDir   string
}

// NewEngine builds an Engine, loading the evaluator file (if any) and the
// library/tests trees into a fresh global environment. Per-file errors are
// reported to Out and do not fail the call (spec §6).
func NewEngine(cfg EngineConfig) (*Engine, error) {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	p := pool.New()

	instructions, labels, err := loadEvaluatorFile(p, cfg.EvaluatorPath)
	if err != nil {
		fmt.Fprintf(out, "evaluator: %v\n", err)
	}

	e := &Engine{
		pool:       p,
		compiler:   compiler.New(labels),
		evaluator:  instructions,
		global:     env.New(p, nil),
		traceLevel: cfg.TraceLevel,
		out:        out,
		libraryDir: cfg.LibraryDir,
		testsDir:   cfg.TestsDir,
	}
	e.loadStartupTree(cfg.LibraryDir)
	e.loadStartupTree(cfg.TestsDir)
	return e, nil
}

// Pool returns the engine's shared value pool, for callers (cmd/schemevm's
// run subcommand) that need to parse source text into it directly.
func (e *Engine) Pool() *pool.Pool { return e.pool }

func (e *Engine) loadStartupTree(dir string) {
	if dir == "" {
		return
	}
	if err := e.LoadPath(dir); err != nil {
		fmt.Fprintf(e.out, "%v\n", err)
	}
}

// newMachine builds a fresh machine carrying the evaluator's instructions
// (so a compiled `(eval ...)` has an eval-dispatch to jump to) and every
// primitive the `primitives` package defines, including compile/code which
// must always be bound to the machine currently executing them.
func (e *Engine) newMachine() (*machine.Machine, error) {
	m, err := machine.New(e.pool, e.evaluator, outputRegister)
	if err != nil {
		return nil, err
	}
	m.TraceLevel = e.traceLevel
	m.TraceOut = e.out
	primitives.Register(e.pool, m, e.compiler, e.global, e.out)
	return m, nil
}

// Eval compiles and runs one top-level expression, threading any mutation
// of the global environment (define, set!) forward for the next call.
//
// Each call builds a brand new machine.Machine. Machine.Run unconditionally
// rewinds its program counter to the start of its own code chain, so a
// single long-lived machine cannot host a second, independent top-level
// form without re-executing the first; a fresh machine per form sidesteps
// that rather than fighting it. Continuity across calls lives entirely in
// e.pool and in e.global, itself Export/Import'd on every WriteToRegister/
// ReadFromRegister round trip (pool.Pool's documented deep-copy semantics).
func (e *Engine) Eval(form *pool.Value) *pool.Value {
	m, err := e.newMachine()
	if err != nil {
		return e.pool.NewError("%v", err)
	}
	seq, err := e.compiler.Compile(e.pool, form, "val", compiler.LinkageNext)
	if err != nil {
		return e.pool.NewError("%v", err)
	}
	if err := m.Load(seq.Instructions); err != nil {
		return e.pool.NewError("%v", err)
	}
	result := m.Run(map[string]*pool.Value{"env": e.global})
	e.global = m.ReadFromRegister("env")
	return result
}

// LoadPath evaluates every .scm file found at path (a single file or a
// directory walked recursively, alphabetically) in the current global
// environment. Per-file and per-form errors are reported, not fatal.
func (e *Engine) LoadPath(path string) error {
	files, err := schemeFiles(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	for _, file := range files {
		if err := e.loadFile(file); err != nil {
			fmt.Fprintf(e.out, "%s: %v\n", file, err)
		}
	}
	return nil
}

func (e *Engine) loadFile(path string) error {
	text, err := readFile(path)
	if err != nil {
		return err
	}
	forms, err := parser.Parse(e.pool, text)
	if err != nil {
		return err
	}
	for _, form := range pool.ToSlice(forms) {
		result := e.Eval(form)
		if result.Kind == pool.KindError {
			fmt.Fprintf(e.out, "%s: %s\n", path, pool.Print(result))
		}
	}
	return nil
}

// ResetGlobal re-creates the global environment and reloads the library
// and tests trees, leaving the already-loaded evaluator in place
// (SPEC_FULL.md §4: original_source's own reset rebuilds environment and
// library/tests, not a full process restart).
func (e *Engine) ResetGlobal() {
	e.global = env.New(e.pool, nil)
	e.loadStartupTree(e.libraryDir)
	e.loadStartupTree(e.testsDir)
}
