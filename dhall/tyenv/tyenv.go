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

// Package tyenv extends nameenv with, per frame, the binder's type and
// an optional bound value — the environment type_with threads through
// the whole expression tree, a compiler frame generalized to carry a
// semantic Value rather than an alias expression.
package tyenv

import (
	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/nameenv"
	"dhall-lang.org/go/dhall/value"
)

// TyEnv is a NameEnv with two parallel per-frame slices: each binder's
// type, and its bound value (nil if it has none). vals is kept in the
// exact shape value.NzEnv wants so AsNzEnv can hand it out directly
// instead of copying — both frames and AsNzEnv index into the same
// backing array. The zero value is not usable; use Empty.
type TyEnv struct {
	names *nameenv.NameEnv
	types []value.Value
	vals  []value.Value
}

func Empty() *TyEnv { return &TyEnv{names: nameenv.Empty()} }

func (e *TyEnv) Size() int { return e.names.Size() }

// InsertType pushes a frame with no bound value. Pair every call with
// a deferred Pop — InsertType/InsertValue use the in-place NameEnv
// discipline, which is sound whenever release of the frame is
// guaranteed on every exit path, and type_with's recursive descent
// guarantees exactly that.
func (e *TyEnv) InsertType(label dhallast.Label, typ value.Value) {
	e.names.InsertMut(label)
	e.types = append(e.types, typ)
	e.vals = append(e.vals, nil)
}

// InsertValue pushes a frame with a concrete bound value, for `let`
// bindings: subsequent Var lookups of this binder make that value
// available to the normalizer, even though the type judgment itself
// only ever consults the frame's type.
func (e *TyEnv) InsertValue(label dhallast.Label, typ, bound value.Value) {
	e.names.InsertMut(label)
	e.types = append(e.types, typ)
	e.vals = append(e.vals, bound)
}

// Pop undoes the most recent InsertType/InsertValue. Callers defer
// this immediately after insertion.
func (e *TyEnv) Pop() {
	e.names.RemoveMut()
	e.types = e.types[:len(e.types)-1]
	e.vals = e.vals[:len(e.vals)-1]
}

// Lookup resolves v against the name environment and returns the
// de Bruijn index together with that frame's type. A missing variable
// reports ok=false; the caller turns that into ErrUnboundVariable.
func (e *TyEnv) Lookup(v dhallast.V) (dhallast.AlphaVar, value.Value, bool) {
	a, ok := e.names.UnlabelVar(v)
	if !ok {
		return dhallast.AlphaVar{}, nil, false
	}
	return a, e.types[len(e.types)-1-a.Idx], true
}

// AsVarEnv projects to the view type-to-expr rendering needs: only
// the count of binders in scope.
func (e *TyEnv) AsVarEnv() value.VarEnv {
	return value.NewVarEnv(e.Size())
}

// AsNzEnv projects to the view the normalizer needs: the stack of
// bound values, with a nil entry wherever a binder has none. This is
// a zero-cost projection — the returned NzEnv shares e.vals' backing
// array rather than copying it, valid because every caller that
// extends an NzEnv (e.g. a Pi/Lam closure application) does so by
// appending to a fresh copy, never by mutating Vals in place.
func (e *TyEnv) AsNzEnv() value.NzEnv {
	return value.NzEnv{Vals: e.vals}
}
