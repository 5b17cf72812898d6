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

package typecheck

import (
	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/nameenv"
	"dhall-lang.org/go/dhall/value"
)

// exprClosure is the value.Closure built for a Lam whose body's type
// has no syntactic form of its own: expr is that type, already quoted
// (see universeOf and typeLam), closing over env at the point the Lam
// was typechecked. Unlike value.ConstClosure, Apply here really does
// substitute and re-evaluate, since expr may genuinely mention the
// binder.
type exprClosure struct {
	norm   value.Normalizer
	binder dhallast.Label
	expr   dhallast.Expr
	env    value.NzEnv
}

func (c *exprClosure) Apply(arg value.Value) value.Value {
	env := value.NzEnv{Vals: append(append([]value.Value(nil), c.env.Vals...), arg)}
	return c.norm.FromKindAndType(c.expr, env)
}

// RemoveBinder succeeds iff expr does not mention its own (innermost)
// binder, in which case it evaluates expr under an environment that
// never supplies a value for that binder — any reference to it would
// have to resolve as free, which dependsOnDepthZero already ruled out.
func (c *exprClosure) RemoveBinder() (value.Value, bool) {
	ne := nameenv.Empty().Insert(c.binder)
	if dependsOnDepthZero(ne, c.expr) {
		return nil, false
	}
	env := value.NzEnv{Vals: append(append([]value.Value(nil), c.env.Vals...), nil)}
	return c.norm.FromKindAndType(c.expr, env), true
}

// dependsOnDepthZero walks body looking for any Var node that resolves
// (relative to ne) to de Bruijn index 0 — i.e. any reference to ne's
// innermost binder. It mirrors the shape of a free-variable scan over
// dhallast.Expr, pushing one frame per binder it descends through.
func dependsOnDepthZero(ne *nameenv.NameEnv, e dhallast.Expr) bool {
	switch n := e.(type) {
	case *dhallast.Var:
		a, ok := ne.UnlabelVar(n.V)
		return ok && a.Idx == 0
	case *dhallast.Lam:
		if dependsOnDepthZero(ne, n.Annot) {
			return true
		}
		return dependsOnDepthZero(ne.Insert(n.Binder), n.Body)
	case *dhallast.Pi:
		if dependsOnDepthZero(ne, n.Annot) {
			return true
		}
		return dependsOnDepthZero(ne.Insert(n.Binder), n.Body)
	case *dhallast.Let:
		if n.Annot != nil && dependsOnDepthZero(ne, n.Annot) {
			return true
		}
		if dependsOnDepthZero(ne, n.Value) {
			return true
		}
		return dependsOnDepthZero(ne.Insert(n.Binder), n.Body)
	case *dhallast.App:
		return dependsOnDepthZero(ne, n.Fn) || dependsOnDepthZero(ne, n.Arg)
	case *dhallast.Annot:
		return dependsOnDepthZero(ne, n.Value) || dependsOnDepthZero(ne, n.Type)
	case *dhallast.BoolIf:
		return dependsOnDepthZero(ne, n.Cond) || dependsOnDepthZero(ne, n.Then) || dependsOnDepthZero(ne, n.Else)
	case *dhallast.BinOp:
		return dependsOnDepthZero(ne, n.L) || dependsOnDepthZero(ne, n.R)
	case *dhallast.Assert:
		return dependsOnDepthZero(ne, n.Annotation)
	case *dhallast.SomeLit:
		return dependsOnDepthZero(ne, n.Value)
	case *dhallast.EmptyListLit:
		return dependsOnDepthZero(ne, n.Type)
	case *dhallast.NEListLit:
		for _, el := range n.Exprs {
			if dependsOnDepthZero(ne, el) {
				return true
			}
		}
		return false
	case *dhallast.TextLit:
		for _, c := range n.Chunks {
			if c.Expr != nil && dependsOnDepthZero(ne, c.Expr) {
				return true
			}
		}
		return false
	case *dhallast.RecordLit:
		for _, l := range n.Order {
			if dependsOnDepthZero(ne, n.Fields[l]) {
				return true
			}
		}
		return false
	case *dhallast.RecordType:
		for _, l := range n.Order {
			if dependsOnDepthZero(ne, n.Fields[l]) {
				return true
			}
		}
		return false
	case *dhallast.UnionType:
		for _, l := range n.Order {
			alt := n.Alternatives[l]
			if alt != nil && dependsOnDepthZero(ne, alt) {
				return true
			}
		}
		return false
	case *dhallast.Field:
		return dependsOnDepthZero(ne, n.Record)
	case *dhallast.Projection:
		return dependsOnDepthZero(ne, n.Record)
	case *dhallast.ProjectionByExpr:
		return dependsOnDepthZero(ne, n.Record) || dependsOnDepthZero(ne, n.Expr)
	case *dhallast.Completion:
		return dependsOnDepthZero(ne, n.Value) || dependsOnDepthZero(ne, n.Handler)
	case *dhallast.Merge:
		if dependsOnDepthZero(ne, n.Handlers) || dependsOnDepthZero(ne, n.Union) {
			return true
		}
		return n.Annotation != nil && dependsOnDepthZero(ne, n.Annotation)
	case *dhallast.ToMap:
		if dependsOnDepthZero(ne, n.Value) {
			return true
		}
		return n.Type != nil && dependsOnDepthZero(ne, n.Type)
	case *dhallast.ConstExpr, *dhallast.BuiltinExpr, *dhallast.BoolLit,
		*dhallast.NaturalLit, *dhallast.IntegerLit, *dhallast.DoubleLit, *dhallast.Embed:
		return false
	default:
		return false
	}
}
