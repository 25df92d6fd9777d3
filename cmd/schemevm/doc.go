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

// The schemevm command line tool is a showcase for the register-machine
// runtime built across the pool, env, code, parser, syntax, machine,
// compiler and primitives packages.
//
// Usage:
//
//	schemevm [repl] [flags]
//	schemevm run FILE... [flags]
//	schemevm asm FILE
//
// With no subcommand, schemevm starts the interactive REPL described under
// "repl". Flags shared by "repl" and "run":
//
//	--evaluator path
//		  instruction s-expression file providing the eval-dispatch
//		  label reached by (eval expr)
//	--library path
//		  directory of .scm files loaded into the global environment
//		  at startup, before --tests
//	--tests path
//		  directory of .scm files loaded after --library
//	--trace int
//		  initial machine trace level (0, 1 or 2)
//
// repl additionally accepts:
//
//	--history path
//		  persistent, tidy-echoed history file
//	--dump-session path
//		  write a YAML transcript of the session on exit
//
// run parses and evaluates every form of every given file, in order, in one
// fresh global environment, printing each form's result; it exits 1 if the
// last result is an error.
//
// asm reads a file of instruction s-expressions, builds a machine from them
// to validate labels and operand shapes, and prints the instructions back
// out in their canonical form.
package main
