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

import "github.com/cockroachdb/apd/v3"

// Expr is the shape of a Dhall expression. Only one concrete recursive
// tree reaches this module — a fully resolved one, whose Embed
// payloads are already-typechecked values — so every grammar
// production collapses into one sealed interface rather than being
// parameterized over a resolution phase.
type Expr interface {
	Span() Span
	exprNode()
}

// node is embedded by every Expr variant to promote Span() and the
// unexported sealing method, instead of repeating both on each type.
type node struct {
	span Span
}

func (n node) Span() Span { return n.span }
func (node) exprNode()    {}

// Var is a source-level variable reference.
type Var struct {
	node
	V V
}

// Lam is a function literal: λ(Binder : Annot) -> Body.
type Lam struct {
	node
	Binder Label
	Annot  Expr
	Body   Expr
}

// Pi is a (possibly dependent) function type: ∀(Binder : Annot) -> Body.
type Pi struct {
	node
	Binder Label
	Annot  Expr
	Body   Expr
}

// Let is a let-binding. Annot is nil when the source omitted a type
// annotation on the bound value.
type Let struct {
	node
	Binder Label
	Annot  Expr
	Value  Expr
	Body   Expr
}

// App is function application.
type App struct {
	node
	Fn  Expr
	Arg Expr
}

// Annot is an explicit type ascription: Value : Type.
type Annot struct {
	node
	Value Expr
	Type  Expr
}

// ConstExpr is one of the three universes used as an expression.
type ConstExpr struct {
	node
	Const Const
}

// BuiltinExpr references one of Dhall's predeclared names.
type BuiltinExpr struct {
	node
	Builtin Builtin
}

type BoolLit struct {
	node
	Value bool
}

type NaturalLit struct {
	node
	Value *apd.Decimal
}

type IntegerLit struct {
	node
	Value *apd.Decimal
}

type DoubleLit struct {
	node
	Value *apd.Decimal
}

// TextChunk is one piece of an interpolated text literal: a literal
// prefix followed by an optional interpolated expression.
type TextChunk struct {
	Prefix string
	Expr   Expr // nil for the final, expression-less chunk
}

type TextLit struct {
	node
	Chunks []TextChunk
	Suffix string
}

// EmptyListLit is `[] : T`; T must normalize to `List X`.
type EmptyListLit struct {
	node
	Type Expr
}

// NEListLit is a non-empty list literal; every element must share a
// single type.
type NEListLit struct {
	node
	Exprs []Expr
}

type SomeLit struct {
	node
	Value Expr
}

type RecordLit struct {
	node
	Fields map[Label]Expr
	// Order preserves source order for duplicate-key error messages
	// and deterministic rendering; Fields alone (a map) does not.
	Order []Label
}

type RecordType struct {
	node
	Fields map[Label]Expr
	Order  []Label
}

// UnionType maps each alternative to its optional type; a nil Expr
// means a nullary alternative (`< Foo >` rather than `< Foo : T >`).
type UnionType struct {
	node
	Alternatives map[Label]Expr
	Order        []Label
}

type Field struct {
	node
	Record Expr
	Label  Label
}

type Projection struct {
	node
	Record Expr
	Labels []Label
}

// Merge is `merge Handlers Union : Annotation`; Annotation is nil
// unless the source supplied one.
type Merge struct {
	node
	Handlers   Expr
	Union      Expr
	Annotation Expr
}

// Assert is `assert : Annotation`.
type Assert struct {
	node
	Annotation Expr
}

type BoolIf struct {
	node
	Cond, Then, Else Expr
}

type BinOp struct {
	node
	Op   Operator
	L, R Expr
}

// ToMap, ProjectionByExpr and Completion are parsed but never
// typechecked: type_one_layer reports ErrUnimplemented for all three.
type ToMap struct {
	node
	Value Expr
	Type  Expr
}

type ProjectionByExpr struct {
	node
	Record Expr
	Expr   Expr
}

type Completion struct {
	node
	Value  Expr
	Handler Expr
}

// Embed carries a payload that has already been resolved and
// typechecked by a collaborator outside this module (e.g. an import
// that was itself fully processed). The typechecker type-asserts
// Payload to *typecheck.TyExpr; dhallast stays ignorant of that type to
// avoid an import cycle between the AST and the typed-value package.
type Embed struct {
	node
	Payload any
}

// Import marks a location that a parser produced but that the (out of
// scope) resolver has not yet replaced with an Embed. Its presence
// when type_with/type_one_layer runs is a hard logic error: resolution
// must always precede typechecking.
type Import struct {
	node
	Location string
}
