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

package tyenv

import (
	"testing"

	"github.com/go-quicktest/qt"

	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/value"
)

func TestInsertTypePopRestoresScope(t *testing.T) {
	env := Empty()
	natural := value.ConstVal{Const: dhallast.Type}

	env.InsertType("x", natural)
	qt.Assert(t, qt.Equals(env.Size(), 1))

	_, typ, ok := env.Lookup(dhallast.V{Name: "x", Idx: 0})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(typ, value.Value(natural)))

	env.Pop()
	qt.Assert(t, qt.Equals(env.Size(), 0))
	_, _, ok = env.Lookup(dhallast.V{Name: "x", Idx: 0})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestLookupMissingVariable(t *testing.T) {
	env := Empty()
	env.InsertType("x", value.ConstVal{Const: dhallast.Type})
	defer env.Pop()

	_, _, ok := env.Lookup(dhallast.V{Name: "y", Idx: 0})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestAsVarEnvTracksSize(t *testing.T) {
	env := Empty()
	qt.Assert(t, qt.Equals(env.AsVarEnv().Size(), 0))

	env.InsertType("x", value.ConstVal{Const: dhallast.Type})
	defer env.Pop()
	env.InsertType("y", value.ConstVal{Const: dhallast.Type})
	defer env.Pop()

	qt.Assert(t, qt.Equals(env.AsVarEnv().Size(), 2))
}

func TestAsNzEnvCarriesBoundValues(t *testing.T) {
	env := Empty()
	natTy := value.ConstVal{Const: dhallast.Type}
	bound := value.AppliedBuiltin{Builtin: dhallast.Natural}

	env.InsertType("x", natTy)
	defer env.Pop()
	env.InsertValue("y", natTy, bound)
	defer env.Pop()

	nz := env.AsNzEnv()
	qt.Assert(t, qt.Equals(nz.Size(), 2))
	qt.Assert(t, qt.IsNil(nz.Vals[0]))
	qt.Assert(t, qt.DeepEquals(nz.Vals[1], value.Value(bound)))
}

func TestAsNzEnvSharesBackingArray(t *testing.T) {
	env := Empty()
	env.InsertType("x", value.ConstVal{Const: dhallast.Type})
	defer env.Pop()

	nz := env.AsNzEnv()
	qt.Assert(t, qt.Equals(&nz.Vals[0], &env.vals[0]))
}
