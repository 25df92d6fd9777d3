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

// Package repl is the external collaborator of spec §6: an interactive
// read-compile-run loop built on chzyer/readline, a handful of bare-word
// commands, a persistent tidy-echoed history file, and startup loading of
// an evaluator instruction file plus library/tests source trees.
package repl
