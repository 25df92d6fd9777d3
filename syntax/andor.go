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

import "github.com/dn47h/schemevm/pool"

// IsAnd reports `(and ...)`.
func IsAnd(exp *pool.Value) bool { return IsTaggedList(exp, "and") }

// AndExpressions returns the sub-expressions of an `and` form.
func AndExpressions(exp *pool.Value) *pool.Value { return exp.Cdr() }

// IsOr reports `(or ...)`.
func IsOr(exp *pool.Value) bool { return IsTaggedList(exp, "or") }

// OrExpressions returns the sub-expressions of an `or` form.
func OrExpressions(exp *pool.Value) *pool.Value { return exp.Cdr() }
