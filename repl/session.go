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

	"gopkg.in/yaml.v3"
)

// sessionEntry is one accepted top-level input and the printed result of
// each of its forms.
type sessionEntry struct {
	Input   string   `yaml:"input"`
	Results []string `yaml:"results"`
}

// sessionLog accumulates a --dump-session transcript, written as YAML on
// flush (SPEC_FULL.md §2: "a thin extra surface that exercises the
// [yaml.v3] dependency without growing into a new subsystem").
type sessionLog struct {
	path    string
	entries []sessionEntry
}

func newSessionLog(path string) *sessionLog {
	return &sessionLog{path: path}
}

func (s *sessionLog) record(input string, results []string) {
	if input == "" {
		return
	}
	s.entries = append(s.entries, sessionEntry{Input: input, Results: results})
}

func (s *sessionLog) flush() error {
	out, err := yaml.Marshal(s.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}
