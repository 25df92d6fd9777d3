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

import "github.com/dn47h/schemevm/pool"

// tidyEcho renders forms the way original_source/src/repl.c's
// process_repl_command does before calling add_history: print the whole
// top-level form list as one s-expression and strip its outer parens, so a
// multi-line continuation is stored as one flattened, reprinted line
// rather than the raw keystrokes that produced it.
func tidyEcho(p *pool.Pool, forms []*pool.Value) string {
	s := pool.Print(p.FromSlice(forms))
	if len(s) <= 2 {
		return ""
	}
	return s[1 : len(s)-1]
}

// recordHistory appends the tidy-echoed line to rl's history, skipping it
// if it is empty or identical to the last entry recorded (hist.c's
// hist_add: "curr == NULL || strcmp(curr->line, input) != 0").
func (r *REPL) recordHistory(forms []*pool.Value) {
	line := tidyEcho(r.pool, forms)
	if line == "" || line == r.lastHistory {
		return
	}
	r.lastHistory = line
	r.rl.SaveHistory(line)
}
