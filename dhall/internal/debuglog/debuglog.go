// Copyright 2026 The Dhall-Go Authors
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

// Package debuglog is a single package-level trace gate: off by
// default, enabled with an environment variable, and never
// participating in control flow — a TypeError's decision to fire
// never depends on whether tracing is on.
package debuglog

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("DHALL_DEBUG") != ""

// Printf writes a trace line to stderr when DHALL_DEBUG is set.
func Printf(format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "[dhall] "+format+"\n", args...)
}
