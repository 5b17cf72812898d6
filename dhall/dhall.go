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

// Package dhall is the public entry point: it re-exports the pieces of
// dhall/typecheck, dhall/value and dhall/dhallast a caller needs
// without reaching into internal/-style subpackages directly.
package dhall

import (
	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/tyenv"
	"dhall-lang.org/go/dhall/typecheck"
	"dhall-lang.org/go/dhall/value"
)

// Expr is a resolved expression tree: every Import node already
// replaced by an Embed carrying a typechecked value (dhallast.Expr,
// re-exported so most callers never need to import dhallast directly).
type Expr = dhallast.Expr

// Value is a normalized Dhall value (value.Value, re-exported).
type Value = value.Value

// Normalizer is the external whnf/nf reduction collaborator the
// typechecker requires (value.Normalizer, re-exported).
type Normalizer = value.Normalizer

// TyExpr is expr annotated with its synthesized type
// (typecheck.TyExpr, re-exported).
type TyExpr = typecheck.TyExpr

// Typecheck infers expr's type under the empty environment: type_with(empty, e).
func Typecheck(norm Normalizer, expr Expr) (*TyExpr, error) {
	return typecheck.Typecheck(norm, expr)
}

// TypecheckWith checks expr against an explicit type t:
// typecheck(Annot(e, t)).
func TypecheckWith(norm Normalizer, expr, t Expr) (*TyExpr, error) {
	return typecheck.TypecheckWith(norm, expr, t)
}

// Env is a fresh, empty typing environment, exposed for callers that
// need to typecheck a sequence of expressions sharing one growing
// scope (e.g. a REPL) rather than one expression at a time.
func Env() *tyenv.TyEnv { return tyenv.Empty() }

// TypeWith is Typecheck/TypecheckWith's building block: it typechecks
// expr under an explicit, possibly non-empty environment.
func TypeWith(env *tyenv.TyEnv, norm Normalizer, expr Expr) (*TyExpr, error) {
	return typecheck.TypeWith(env, norm, expr)
}
