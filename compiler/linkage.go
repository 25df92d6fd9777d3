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

package compiler

import "github.com/dn47h/schemevm/code"

// Linkage names: "next" falls through, "return" ends with goto (reg
// continue), anything else is a label name to goto (spec §4.6).
const (
	LinkageNext   = "next"
	LinkageReturn = "return"
)

// compileLinkage builds the trailing goto a linkage requires, or an empty
// sequence for "next".
func compileLinkage(linkage string) Seq {
	switch linkage {
	case LinkageNext:
		return emptySeq()
	case LinkageReturn:
		return seqOf([]string{"continue"}, nil, code.NewGoto(code.Reg("continue")))
	default:
		return seqOf(nil, nil, code.NewGoto(code.Lbl(linkage)))
	}
}

// endWithLinkage appends the linkage's trailing code to seq, preserving
// `continue` across the join so a "return" linkage further up the call
// chain still sees it.
func endWithLinkage(seq Seq, linkage string) Seq {
	return preserving([]string{"continue"}, seq, compileLinkage(linkage))
}
