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

// Package value holds the normalized (semantic) form of a Dhall
// expression, i.e. what a type looks like once the external
// normalizer has reduced it. Value itself is the sealed interface
// here, with no separate vertex wrapper, since Dhall has no
// unification to track conjuncts for.
package value

import "dhall-lang.org/go/dhall/dhallast"

// Value is a normalized Dhall expression — always in at least whnf
// whenever it is used as a "type". Like dhallast.Expr, it's a sealed
// interface implemented by a fixed set of variants.
type Value interface {
	valueNode()
}

// ConstVal is one of the three universes.
type ConstVal struct {
	Const dhallast.Const
}

func (ConstVal) valueNode() {}

// AppliedBuiltin is a builtin applied to zero or more normalized
// arguments (e.g. `List Natural` is AppliedBuiltin{List, [Natural]}).
// The explicit args slice exists because Dhall builtins are curried
// rather than always saturated at the call site.
type AppliedBuiltin struct {
	Builtin dhallast.Builtin
	Args    []Value
}

func (AppliedBuiltin) valueNode() {}

// RecordType is a normalized record type; Order preserves field order
// for deterministic rendering.
type RecordType struct {
	Fields map[dhallast.Label]Value
	Order  []dhallast.Label
}

func (RecordType) valueNode() {}

// UnionType is a normalized union type. A nil Value for an
// alternative means it is nullary.
type UnionType struct {
	Alternatives map[dhallast.Label]Value
	Order        []dhallast.Label
}

func (UnionType) valueNode() {}

// PiClosure is the type of a function: ∀(Binder : Annot) -> Closure(arg).
type PiClosure struct {
	Binder  dhallast.Label
	Annot   Value
	Closure Closure
}

func (PiClosure) valueNode() {}

// Equivalence is the type of an `assert`-able equality between two
// terms: `a === b`.
type Equivalence struct {
	L, R Value
}

func (Equivalence) valueNode() {}

// Opaque wraps any other normalization artifact the external
// normalizer produces that the typechecker only ever compares for
// equality or re-quotes, never inspects structurally.
type Opaque struct {
	Data any
}

func (Opaque) valueNode() {}
