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

package primitives

import (
	"fmt"
	"io"

	"github.com/dn47h/schemevm/pool"
	"github.com/dn47h/schemevm/syntax"
)

// registerIO binds display/newline/error/info. display and newline write
// to out (the REPL's stdout, or any io.Writer a caller chooses), matching
// the teacher's practice of an injected io.Writer rather than a logging
// library (see SPEC_FULL.md's AMBIENT STACK section).
func registerIO(p *pool.Pool, global *pool.Value, out io.Writer) {
	define(p, global, "display", func(args *pool.Value) (*pool.Value, error) {
		for _, v := range pool.ToSlice(args) {
			fmt.Fprint(out, pool.Print(v))
		}
		return p.Nil(), nil
	})

	define(p, global, "newline", func(args *pool.Value) (*pool.Value, error) {
		fmt.Fprintln(out)
		return p.Nil(), nil
	})

	define(p, global, "error", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		if len(items) == 0 {
			return p.NewError(""), nil
		}
		return syntax.MakeError(p, items[0].Str(), p.FromSlice(items[1:])), nil
	})

	define(p, global, "info", func(args *pool.Value) (*pool.Value, error) {
		items := pool.ToSlice(args)
		if len(items) == 0 {
			return p.NewInfo(""), nil
		}
		rendered := make([]interface{}, 0, len(items)-1)
		for _, a := range items[1:] {
			rendered = append(rendered, pool.Print(a))
		}
		return p.NewInfo(items[0].Str(), rendered...), nil
	})
}
