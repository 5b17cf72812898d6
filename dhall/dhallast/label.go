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

package dhallast

// Label is an interned identifier. Equality is textual, so the
// underlying representation can just be a string: unlike a feature
// key that packs a package qualifier and a numeric index for fast map
// lookups, a Dhall label carries no extra structure.
type Label string

// V is a source-level variable reference: a name plus a shadowing
// index. Idx 0 means "the nearest enclosing binder of this name".
type V struct {
	Name Label
	Idx  int
}

// AlphaVar is a de Bruijn index: Idx 0 is the innermost binder
// regardless of its name. NameEnv mediates the bijection between V and
// AlphaVar.
type AlphaVar struct {
	Idx int
}
