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

// Package nameenv translates between source-level variable references
// (a name plus a shadowing index) and de Bruijn indices, tracking a
// stack of frames and resolving a variable reference against it from
// the innermost scope outward.
package nameenv

import "dhall-lang.org/go/dhall/dhallast"

// NameEnv is an ordered stack of labels; its length is the number of
// binders enclosing the current expression. The zero value is Empty.
type NameEnv struct {
	names []dhallast.Label
}

// Empty is the environment with no bindings in scope.
func Empty() *NameEnv { return &NameEnv{} }

// Size reports the number of frames.
func (e *NameEnv) Size() int { return len(e.names) }

// Insert returns a new environment with label as the innermost
// binder, leaving e untouched. Used across branches (e.g. the
// typechecker's dependsOnDepthZero walk, which descends into sibling
// subexpressions under the same env) where mutating a shared stack
// would corrupt the sibling branch.
func (e *NameEnv) Insert(label dhallast.Label) *NameEnv {
	names := make([]dhallast.Label, len(e.names)+1)
	copy(names, e.names)
	names[len(names)-1] = label
	return &NameEnv{names: names}
}

// InsertMut and RemoveMut are the in-place pair, safe whenever the
// caller guarantees the push is undone on every exit path (typically
// via defer). type_with uses these instead of Insert along a single
// recursive descent, since there every binder's scope is exited
// exactly once and a fresh allocation per node would be waste.
func (e *NameEnv) InsertMut(label dhallast.Label) {
	e.names = append(e.names, label)
}

func (e *NameEnv) RemoveMut() {
	e.names = e.names[:len(e.names)-1]
}

// UnlabelVar finds the (k+1)-th innermost frame named v.Name and
// returns its de Bruijn index, scanning outward from the innermost
// binder and skipping already-counted shadowed occurrences first. It
// fails silently — returns ok=false — when no such frame exists,
// rather than panicking: an out-of-scope variable is a normal (if
// fatal) typecheck outcome, not a bug in NameEnv itself.
func (e *NameEnv) UnlabelVar(v dhallast.V) (dhallast.AlphaVar, bool) {
	n := len(e.names)
	count := 0
	for depth := 0; depth < n; depth++ {
		if e.names[n-1-depth] == v.Name {
			if count == v.Idx {
				return dhallast.AlphaVar{Idx: depth}, true
			}
			count++
		}
	}
	return dhallast.AlphaVar{}, false
}

// LabelVar is the inverse of UnlabelVar: the label at depth d, paired
// with the count of strictly shallower frames sharing that label.
// Together the two form a round-trip identity on every in-scope
// variable.
func (e *NameEnv) LabelVar(a dhallast.AlphaVar) (dhallast.V, bool) {
	n := len(e.names)
	if a.Idx < 0 || a.Idx >= n {
		return dhallast.V{}, false
	}
	name := e.names[n-1-a.Idx]
	k := 0
	for depth := 0; depth < a.Idx; depth++ {
		if e.names[n-1-depth] == name {
			k++
		}
	}
	return dhallast.V{Name: name, Idx: k}, true
}
