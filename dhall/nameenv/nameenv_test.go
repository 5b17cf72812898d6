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

package nameenv

import (
	"testing"

	"github.com/go-quicktest/qt"

	"dhall-lang.org/go/dhall/dhallast"
)

func TestUnlabelVarShadowing(t *testing.T) {
	// \(x : A) -> \(x : B) -> \(y : C) -> ...
	env := Empty().Insert("x").Insert("x").Insert("y")

	idx, ok := env.UnlabelVar(dhallast.V{Name: "x", Idx: 0})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(idx.Idx, 1))

	idx, ok = env.UnlabelVar(dhallast.V{Name: "x", Idx: 1})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(idx.Idx, 2))

	idx, ok = env.UnlabelVar(dhallast.V{Name: "y", Idx: 0})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(idx.Idx, 0))

	_, ok = env.UnlabelVar(dhallast.V{Name: "x", Idx: 2})
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = env.UnlabelVar(dhallast.V{Name: "z", Idx: 0})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestLabelVarRoundTrip(t *testing.T) {
	env := Empty().Insert("x").Insert("x").Insert("y")

	for _, v := range []dhallast.V{
		{Name: "x", Idx: 0},
		{Name: "x", Idx: 1},
		{Name: "y", Idx: 0},
	} {
		a, ok := env.UnlabelVar(v)
		qt.Assert(t, qt.IsTrue(ok))
		back, ok := env.LabelVar(a)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(back, v))
	}
}

func TestLabelVarOutOfRange(t *testing.T) {
	env := Empty().Insert("x")
	_, ok := env.LabelVar(dhallast.AlphaVar{Idx: 5})
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = env.LabelVar(dhallast.AlphaVar{Idx: -1})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestInsertDoesNotMutateParent(t *testing.T) {
	base := Empty().Insert("x")
	child := base.Insert("y")

	qt.Assert(t, qt.Equals(base.Size(), 1))
	qt.Assert(t, qt.Equals(child.Size(), 2))

	_, ok := base.UnlabelVar(dhallast.V{Name: "y", Idx: 0})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestInsertMutRemoveMutRoundTrip(t *testing.T) {
	env := Empty()
	env.InsertMut("x")
	env.InsertMut("y")
	qt.Assert(t, qt.Equals(env.Size(), 2))

	env.RemoveMut()
	qt.Assert(t, qt.Equals(env.Size(), 1))
	_, ok := env.UnlabelVar(dhallast.V{Name: "y", Idx: 0})
	qt.Assert(t, qt.IsFalse(ok))

	idx, ok := env.UnlabelVar(dhallast.V{Name: "x", Idx: 0})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(idx.Idx, 0))
}
