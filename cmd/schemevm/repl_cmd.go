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
	"os"

	"github.com/spf13/cobra"

	"github.com/dn47h/schemevm/repl"
)

var dumpSessionPath string

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "start the interactive REPL (the default when no subcommand is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
	cmd.Flags().StringVar(&dumpSessionPath, "dump-session", "", "write a YAML transcript of the session to this file on exit")
	return cmd
}

func runRepl(cmd *cobra.Command) error {
	session, err := repl.New(repl.Config{
		EvaluatorPath:   evaluatorPath,
		LibraryDir:      libraryDir,
		TestsDir:        testsDir,
		HistoryPath:     historyPath,
		TraceLevel:      traceLevel,
		DumpSessionPath: dumpSessionPath,
		Out:             os.Stdout,
	})
	if err != nil {
		return err
	}
	return session.Run()
}
