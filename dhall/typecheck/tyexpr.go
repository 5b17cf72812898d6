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

// Package typecheck is the bidirectional typechecker: type_with and
// type_one_layer walk a resolved expression tree (no Import nodes,
// every Embed already carrying a *TyExpr from a prior typecheck run)
// and annotate each subexpression with its synthesized type, extending
// a scope stack the way a compiler's name resolver does — generalized
// here to also enforce Dhall's universe and function-check judgments
// rather than just resolving names.
package typecheck

import (
	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/errors"
	"dhall-lang.org/go/dhall/value"
)

// TyExpr is an expression annotated with its synthesized type. Type is
// nil for exactly one case: Const(Sort), the sole expression with no
// classifying universe.
type TyExpr struct {
	Expr dhallast.Expr
	Type value.Value
}

func newTyExpr(e dhallast.Expr, t value.Value) *TyExpr {
	return &TyExpr{Expr: e, Type: t}
}

// GetType returns the synthesized type, or an error if e wraps
// Const(Sort).
func (t *TyExpr) GetType() (value.Value, error) {
	if t.Type == nil {
		return nil, errors.Newf(t.Expr.Span(), "Sort has no type")
	}
	return t.Type, nil
}

func (t *TyExpr) Span() dhallast.Span { return t.Expr.Span() }
