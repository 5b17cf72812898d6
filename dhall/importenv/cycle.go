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

package importenv

import (
	"fmt"
	"strings"

	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/errors"
)

// locationStack is the cycle guard: a stack of Locations currently
// being resolved, walked on every new import to detect a repeat.
type locationStack []Location

func (s *locationStack) push(l Location)  { *s = append(*s, l) }
func (s *locationStack) pop()             { *s = (*s)[:len(*s)-1] }
func (s locationStack) contains(l Location) bool {
	for _, x := range s {
		if x == l {
			return true
		}
	}
	return false
}

func (s locationStack) snapshot() []Location {
	return append([]Location(nil), s...)
}

// ImportCycleError reports an import cycle: the stack is a snapshot
// taken at the moment the cycle was detected, so it survives the
// subsequent unconditional pop in WithCycleDetection.
type ImportCycleError struct {
	Stack    []Location
	Offender Location
}

var _ errors.Error = (*ImportCycleError)(nil)

func (e *ImportCycleError) Position() dhallast.Span { return dhallast.NoSpan }

func (e *ImportCycleError) Path() string { return "" }

func (e *ImportCycleError) Msg() (string, []any) {
	return "import cycle: %s -> %s", []any{formatStack(e.Stack), e.Offender}
}

func (e *ImportCycleError) Error() string {
	format, args := e.Msg()
	return fmt.Sprintf(format, args...)
}

func formatStack(stack []Location) string {
	parts := make([]string, len(stack))
	for i, l := range stack {
		parts[i] = string(l)
	}
	return strings.Join(parts, " -> ")
}
