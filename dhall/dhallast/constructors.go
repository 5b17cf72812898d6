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

// Constructors for nodes the typechecker synthesizes itself (e.g. the
// Pi type it builds for a Lam, or the RecordType it builds for a
// RecordLit). node is unexported so that only code in this package can
// set a Span directly; code elsewhere gets there through one of these.

func NewVar(span Span, v V) *Var { return &Var{node: node{span}, V: v} }

func NewPi(span Span, binder Label, annot, body Expr) *Pi {
	return &Pi{node: node{span}, Binder: binder, Annot: annot, Body: body}
}

func NewLam(span Span, binder Label, annot, body Expr) *Lam {
	return &Lam{node: node{span}, Binder: binder, Annot: annot, Body: body}
}

func NewConst(span Span, c Const) *ConstExpr {
	return &ConstExpr{node: node{span}, Const: c}
}

func NewBuiltin(span Span, b Builtin) *BuiltinExpr {
	return &BuiltinExpr{node: node{span}, Builtin: b}
}

func NewApp(span Span, fn, arg Expr) *App {
	return &App{node: node{span}, Fn: fn, Arg: arg}
}

func NewRecordType(span Span, order []Label, fields map[Label]Expr) *RecordType {
	return &RecordType{node: node{span}, Order: order, Fields: fields}
}

func NewUnionType(span Span, order []Label, alts map[Label]Expr) *UnionType {
	return &UnionType{node: node{span}, Order: order, Alternatives: alts}
}

func NewEmbed(span Span, payload any) *Embed {
	return &Embed{node: node{span}, Payload: payload}
}

func NewAnnot(span Span, value, typ Expr) *Annot {
	return &Annot{node: node{span}, Value: value, Type: typ}
}

func NewBinOp(span Span, op Operator, l, r Expr) *BinOp {
	return &BinOp{node: node{span}, Op: op, L: l, R: r}
}
