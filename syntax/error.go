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

package syntax

import (
	"fmt"
	"strings"

	"github.com/dn47h/schemevm/pool"
)

// MakeError builds an Error Value from a printf-style message symbol and a
// list of Scheme argument Values, each rendered to its canonical
// s-expression text before substitution (spec §7's "plain-text description
// plus ... the offending expression rendered to its canonical s-expression
// form").
func MakeError(p *pool.Pool, format string, args *pool.Value) *pool.Value {
	rendered := make([]interface{}, 0, pool.Length(args))
	for _, a := range pool.ToSlice(args) {
		rendered = append(rendered, pool.Print(a))
	}
	return p.NewError(strings.ReplaceAll(format, "%s", "%v"), rendered...)
}

// SignalError is the Go-native equivalent used by compiler- and
// machine-level code paths that build an error message from already
// formatted string arguments rather than Scheme Values.
func SignalError(p *pool.Pool, format string, args ...interface{}) *pool.Value {
	return p.NewError(fmt.Sprintf(format, args...))
}
