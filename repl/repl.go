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
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

const (
	primaryPrompt      = ">>> "
	continuationPrompt = "... "
	outputRegister     = "val"
)

// Config carries every REPL startup option, sourced from cmd/schemevm's
// flags (SPEC_FULL.md §3).
type Config struct {
	EvaluatorPath   string
	LibraryDir      string
	TestsDir        string
	HistoryPath     string
	TraceLevel      int
	DumpSessionPath string
	Out             io.Writer
}

// REPL is one interactive session: an Engine (pool, global environment,
// evaluator instructions, and compiler, all shared across top-level forms)
// plus a readline front-end, command dispatch, and history/session
// recording.
type REPL struct {
	*Engine
	rl          *readline.Instance
	lastHistory string
	session     *sessionLog
}

// New builds a REPL: an Engine per EngineConfig, plus a line editor backed
// by cfg.HistoryPath and, if set, a --dump-session transcript.
func New(cfg Config) (*REPL, error) {
	e, err := NewEngine(EngineConfig{
		EvaluatorPath: cfg.EvaluatorPath,
		LibraryDir:    cfg.LibraryDir,
		TestsDir:      cfg.TestsDir,
		TraceLevel:    cfg.TraceLevel,
		Out:           cfg.Out,
	})
	if err != nil {
		return nil, err
	}

	rlCfg := &readline.Config{
		Prompt:                 primaryPrompt,
		HistoryFile:            cfg.HistoryPath,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	}
	configureRawMode(rlCfg)
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, errors.Wrap(err, "starting line editor")
	}

	r := &REPL{Engine: e, rl: rl}
	if cfg.DumpSessionPath != "" {
		r.session = newSessionLog(cfg.DumpSessionPath)
	}
	return r, nil
}

// Run drives the read-compile-run loop until quit/exit/q or EOF.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "schemevm")
	fmt.Fprintln(r.out, `type "q" to quit`)
	fmt.Fprintln(r.out)

	defer r.rl.Close()
	if r.session != nil {
		defer r.session.flush()
	}

	for {
		items, err := r.readForm()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		if stop, handled := r.dispatchCommand(items); handled {
			if stop {
				break
			}
			continue
		}

		r.recordHistory(items)
		var outputs []string
		for _, form := range items {
			result := r.Eval(form)
			line := pool.Print(result)
			outputs = append(outputs, line)
			fmt.Fprintln(r.out, line)
		}
		if r.session != nil {
			r.session.record(tidyEcho(r.pool, items), outputs)
		}
	}

	fmt.Fprint(r.out, "\nbye!\n")
	return nil
}

// readForm reads one primary-prompt line and, if it fails to parse solely
// because a closing paren is missing, keeps pulling continuation lines
// under "... " until the input balances or a blank line is entered — the
// REPL's redesign of original_source/src/repl.c's get_input (which enters
// continuation mode only after an empty first line) into the more usual
// "an unbalanced form keeps prompting" discipline called for in
// SPEC_FULL.md §4.
func (r *REPL) readForm() ([]*pool.Value, error) {
	r.rl.SetPrompt(primaryPrompt)
	buf, err := r.rl.Readline()
	if err != nil {
		return nil, err
	}
	for {
		parsed, perr := parser.Parse(r.pool, buf)
		if perr == nil {
			return pool.ToSlice(parsed), nil
		}
		if !strings.Contains(perr.Error(), "missing )") {
			return nil, perr
		}
		r.rl.SetPrompt(continuationPrompt)
		cont, err := r.rl.Readline()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(cont) == "" {
			return nil, perr
		}
		buf = buf + " " + cont
	}
}

// dispatchCommand handles the bare-word commands of spec §6's REPL
// commands table. handled reports whether items named a command at all;
// stop reports whether the REPL should terminate.
func (r *REPL) dispatchCommand(items []*pool.Value) (stop, handled bool) {
	if items[0].Kind != pool.KindSymbol {
		return false, false
	}
	switch items[0].Symbol() {
	case "quit", "exit", "q":
		return true, true
	case "clear", "clr", "clrscr":
		fmt.Fprint(r.out, "\x1b[1;1H\x1b[2J")
		return false, true
	case "trace":
		if len(items) > 1 && items[1].Kind == pool.KindNumber {
			r.traceLevel = int(items[1].Number())
		}
		return false, true
	case "reset":
		r.ResetGlobal()
		return false, true
	case "load":
		if len(items) > 1 {
			if err := r.LoadPath(pathArg(items[1])); err != nil {
				fmt.Fprintf(r.out, "%v\n", err)
			}
		}
		return false, true
	default:
		return false, false
	}
}

// pathArg reads a filesystem path out of a parsed REPL command argument:
// a bare word parses as a Symbol (parser.go's symbolChars includes '/' and
// '.'), a quoted one as a String.
func pathArg(v *pool.Value) string {
	if v.Kind == pool.KindString {
		return v.Str()
	}
	return v.Symbol()
}
