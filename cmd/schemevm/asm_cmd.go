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

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/machine"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

// newAsmCmd: "reads one file of instruction s-expressions (§4.4), builds a
// machine, and prints the resulting label/code chain in canonical
// s-expression form" — a stand-alone assemble-and-dump utility filling the
// role cmd/retro's `-dump` flag and the `asm` package play for the teacher
// (SPEC_FULL.md §3).
func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm FILE",
		Short: "assemble an instruction s-expression file and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembleFile(args[0])
		},
	}
}

func assembleFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	p := pool.New()
	forms, err := parser.Parse(p, string(text))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	lines := pool.ToSlice(forms)
	instructions := make([]code.Instruction, 0, len(lines))
	for _, line := range lines {
		inst, err := code.FromSource(line)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		instructions = append(instructions, inst)
	}

	if _, err := machine.New(p, instructions, "val"); err != nil {
		return errors.Wrapf(err, "assembling %s", path)
	}

	for _, inst := range instructions {
		fmt.Fprintln(os.Stdout, pool.Print(inst.ToSource(p)))
	}
	return nil
}
