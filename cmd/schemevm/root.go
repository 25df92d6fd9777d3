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
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Shared flags, bound on the root command so every subcommand (and the
// bare root invocation, which behaves like `repl`) sees the same startup
// configuration (SPEC_FULL.md §3).
var (
	evaluatorPath string
	libraryDir    string
	testsDir      string
	historyPath   string
	traceLevel    int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schemevm",
		Short:         "schemevm is a register-machine Scheme runtime",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}

	root.PersistentFlags().StringVar(&evaluatorPath, "evaluator", "", "path to the evaluator instruction file")
	root.PersistentFlags().StringVar(&libraryDir, "library", "", "directory of library .scm files loaded at startup")
	root.PersistentFlags().StringVar(&testsDir, "tests", "", "directory of test .scm files loaded at startup")
	root.PersistentFlags().StringVar(&historyPath, "history", "", "persistent REPL history file")
	root.PersistentFlags().IntVar(&traceLevel, "trace", 0, "initial machine trace level (0/1/2)")

	root.AddCommand(newReplCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newAsmCmd())

	return root
}
