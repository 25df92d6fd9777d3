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

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/repl"
)

// newRunCmd: "the non-interactive analogue of REPL's load, added because a
// complete CLI needs a non-interactive entry point and the teacher's
// retro binary has exactly this shape (run an image file and exit)"
// (SPEC_FULL.md §3).
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "parse and evaluate each file's forms in a fresh global environment, then exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(args)
		},
	}
}

func runFiles(files []string) error {
	e, err := repl.NewEngine(repl.EngineConfig{
		EvaluatorPath: evaluatorPath,
		LibraryDir:    libraryDir,
		TestsDir:      testsDir,
		TraceLevel:    traceLevel,
		Out:           os.Stdout,
	})
	if err != nil {
		return err
	}

	var last *pool.Value
	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "reading %s", file)
		}
		forms, err := parser.Parse(e.Pool(), string(text))
		if err != nil {
			return errors.Wrapf(err, "parsing %s", file)
		}
		for _, form := range pool.ToSlice(forms) {
			last = e.Eval(form)
			fmt.Fprintln(os.Stdout, pool.Print(last))
		}
	}

	if last != nil && last.Kind == pool.KindError {
		exitCode = 1
	}
	return nil
}
