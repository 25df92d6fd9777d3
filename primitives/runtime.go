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
	"math/rand"
	"time"

	"github.com/dn47h/schemevm/pool"
)

// registerRuntime binds collect/srand/random/time/pretty. The random
// source is private to this call to Register rather than the global
// math/rand state, consistent with spec §5's single-threaded, no-shared-
// state model — a fresh REPL process gets a fresh, independently seedable
// source.
func registerRuntime(p *pool.Pool, global *pool.Value) {
	source := rand.New(rand.NewSource(1))

	define(p, global, "collect", func(args *pool.Value) (*pool.Value, error) {
		p.Collect()
		return p.NewInfo("collected, %d cells live", p.Size()), nil
	})

	define(p, global, "srand", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil || len(ns) != 1 {
			return p.NewError("srand: expected one number"), nil
		}
		source.Seed(int64(ns[0]))
		return p.Nil(), nil
	})

	define(p, global, "random", func(args *pool.Value) (*pool.Value, error) {
		ns, err := numbers(args)
		if err != nil {
			return p.NewError("%v", err), nil
		}
		if len(ns) == 0 {
			return p.NewNumber(source.Float64()), nil
		}
		return p.NewNumber(source.Float64() * ns[0]), nil
	})

	define(p, global, "time", func(args *pool.Value) (*pool.Value, error) {
		return p.NewNumber(float64(time.Now().Unix())), nil
	})

	define(p, global, "pretty", func(args *pool.Value) (*pool.Value, error) {
		v := pool.ToSlice(args)[0]
		return p.NewString(pool.Pretty(v)), nil
	})
}
