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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/dn47h/schemevm/code"
	"github.com/dn47h/schemevm/parser"
	"github.com/dn47h/schemevm/pool"
)

// loadEvaluatorFile reads path as a chain of instruction s-expressions
// (spec §4.4's code format, not Scheme source) and returns the decoded
// instructions plus the set of label names it declares. The evaluator
// kernel is "expressed as register-machine code loaded from an external
// source file" (spec §1); these instructions are never run directly by the
// REPL, only carried into every machine built thereafter so that an
// `(eval ...)` form has somewhere to `goto`.
func loadEvaluatorFile(p *pool.Pool, path string) ([]code.Instruction, map[string]bool, error) {
	if path == "" {
		return nil, nil, nil
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading evaluator file %s", path)
	}
	forms, err := parser.Parse(p, string(text))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing evaluator file %s", path)
	}
	lines := pool.ToSlice(forms)
	instructions := make([]code.Instruction, 0, len(lines))
	labels := make(map[string]bool)
	for _, line := range lines {
		inst, err := code.FromSource(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s", path)
		}
		if inst.Kind == code.KindLabel {
			labels[inst.Label] = true
		}
		instructions = append(instructions, inst)
	}
	return instructions, labels, nil
}

// readFile is a small wrapper so engine.go's loadFile doesn't need to import os
// directly alongside this file's os.ReadFile/os.Stat/filepath.Walk use.
func readFile(path string) (string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(text), nil
}

// schemeFiles returns the .scm files under root, recursively, in
// alphabetical path order (spec §6: "loads ... a library directory and a
// tests directory, each in alphabetical file order"; the `load` command
// reuses the same walk for "recursively evaluate .scm files under PATH").
func schemeFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var files []string
	err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.HasSuffix(path, ".scm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
