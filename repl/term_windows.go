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

import "github.com/chzyer/readline"

// terminalWidth has no portable ioctl on Windows; chzyer/readline handles
// its own console sizing there. 0 tells callers to fall back to a fixed
// width, mirroring cmd/retro/term_windows.go's stub.
func terminalWidth() int { return 0 }

// configureRawMode is a no-op on Windows: unlike cmd/retro's setRawIO,
// which simply fails there, readline's own Windows console backend already
// handles raw mode correctly, so there is nothing to override.
func configureRawMode(cfg *readline.Config) {}
