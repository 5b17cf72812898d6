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

package errors

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"dhall-lang.org/go/dhall/dhallast"
)

func TestNewfFormatsPosition(t *testing.T) {
	pos := dhallast.Span{Filename: "x.dhall", Line: 3, Col: 5}
	err := Newf(pos, "unbound variable: %s", "x")

	qt.Assert(t, qt.Equals(err.Position(), pos))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "x.dhall:3:5")))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "unbound variable: x")))
}

func TestNewfOmitsPositionWhenInvalid(t *testing.T) {
	err := Newf(dhallast.NoSpan, "no type for Sort")
	qt.Assert(t, qt.Equals(err.Error(), "no type for Sort"))
}

func TestMessageRendersSeparately(t *testing.T) {
	m := NewMessage("field %s missing", []any{"foo"})
	format, args := m.Msg()
	qt.Assert(t, qt.Equals(format, "field %s missing"))
	qt.Assert(t, qt.DeepEquals(args, []any{"foo"}))
	qt.Assert(t, qt.Equals(m.Error(), "field foo missing"))
}

func TestNewfPathIsEmpty(t *testing.T) {
	err := Newf(dhallast.NoSpan, "unbound variable: %s", "x")
	qt.Assert(t, qt.Equals(err.Path(), ""))
}

func TestWrapfChainsCause(t *testing.T) {
	cause := Newf(dhallast.NoSpan, "underlying miss")
	pos := dhallast.Span{Filename: "x.dhall", Line: 1, Col: 1}
	err := Wrapf(cause, pos, "import failed: %s", "./x.dhall")

	qt.Assert(t, qt.Equals(err.Position(), pos))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "import failed: ./x.dhall")))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "underlying miss")))
}

func TestAppendFlattensLists(t *testing.T) {
	a := Newf(dhallast.NoSpan, "first")
	b := Newf(dhallast.NoSpan, "second")
	c := Newf(dhallast.NoSpan, "third")

	ab := Append(a, b)
	qt.Assert(t, qt.Equals(len(ab.(List)), 2))

	abc := Append(ab, c)
	qt.Assert(t, qt.Equals(len(abc.(List)), 3))
	qt.Assert(t, qt.Equals(abc.Error(), "first\nsecond\nthird"))
}

func TestAppendWithNilReturnsOther(t *testing.T) {
	a := Newf(dhallast.NoSpan, "only")
	qt.Assert(t, qt.Equals(Append(nil, a), a))
	qt.Assert(t, qt.Equals(Append(a, nil), a))
}
