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

package value

import "dhall-lang.org/go/dhall/dhallast"

// VarEnv is the opaque environment the normalizer needs to quote a
// Value back into an Expr (e.g. to render it in an error message): it
// is parameterized only by the count of binders in scope, derivable
// from a NameEnv by discarding names.
type VarEnv struct {
	size int
}

func NewVarEnv(size int) VarEnv { return VarEnv{size: size} }
func (e VarEnv) Size() int      { return e.size }

// NzEnv is the environment the normalizer needs to reduce an Expr to
// whnf/nf: unlike VarEnv it carries the actual bound values, innermost
// last. A nil entry means the binder has no known value (e.g. an
// unapplied Lam argument) and must be treated as a free neutral
// variable.
type NzEnv struct {
	Vals []Value
}

func (e NzEnv) Size() int { return len(e.Vals) }

// Normalizer is the narrow interface the typechecker uses to reach
// the external normalizer: weak-head and full normal form reduction,
// key-wise map merging for record merge operators, value constructors,
// and the type of a builtin. type_with/type_one_layer hold one of
// these and never reduce an expression themselves.
type Normalizer interface {
	NormalizeWHNF(v Value, env NzEnv) Value
	NormalizeNF(v Value, env NzEnv) Value

	// MergeMaps computes a key-wise union of a and b. Where both
	// define a key, conflict resolves it; merge_maps is also how
	// RightBiasedRecordMerge and RecursiveRecordTypeMerge are built on
	// top of a single primitive.
	MergeMaps(a, b map[dhallast.Label]Value, conflict func(l dhallast.Label, x, y Value) Value) map[dhallast.Label]Value

	FromConst(c dhallast.Const) Value
	FromBuiltin(b dhallast.Builtin) Value

	// FromKindAndType lazily normalizes an as-yet-unreduced Expr,
	// given the NzEnv it closes over, to whnf.
	FromKindAndType(e dhallast.Expr, env NzEnv) Value

	// App applies a function Value to an already-normalized argument,
	// reducing the result to whnf.
	App(fn, arg Value) Value

	// TypeOfBuiltin returns the pre-declared (unevaluated) type of a
	// builtin, which type_one_layer then typechecks and normalizes
	// itself.
	TypeOfBuiltin(b dhallast.Builtin) dhallast.Expr

	// Quote renders a semantic Value back to a syntactic Expr, using
	// only the count of enclosing binders (VarEnv) to pick correctly
	// shadowed names for any free variables it mentions. type_one_layer
	// needs this wherever it must learn the universe of a synthesized
	// type (a Lam's codomain, the U(T) checks, recursive record merge):
	// such a type has no syntactic form of its own, so re-typechecking
	// it means quoting it first.
	Quote(v Value, env VarEnv) dhallast.Expr
}
