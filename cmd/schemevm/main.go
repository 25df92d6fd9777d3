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

// Command schemevm is the CLI entry point (SPEC_FULL.md §3): an
// interactive REPL by default, plus non-interactive `run` and `asm`
// subcommands, built on github.com/spf13/cobra the way
// raymyers-ralph-cc-go/cmd/ralph-cc/main.go structures its own root
// command and flag set.
package main

import (
	"fmt"
	"os"
)

// exitCode lets the `run` subcommand propagate a failing final form's exit
// status (spec §6: "an Error value exits 1; anything else exits 0")
// without calling os.Exit from inside a RunE, which would skip deferred
// cleanup (closing the line editor, flushing a session dump).
var exitCode int

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
