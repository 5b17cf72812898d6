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

// Builtin enumerates Dhall's predeclared names other than the three
// universes (those are Const, not Builtin). type_of_builtin (an
// external normalizer responsibility) maps each of these to its
// pre-declared type.
type Builtin string

const (
	Bool     Builtin = "Bool"
	Natural  Builtin = "Natural"
	Integer  Builtin = "Integer"
	Double   Builtin = "Double"
	Text     Builtin = "Text"
	List     Builtin = "List"
	Optional Builtin = "Optional"

	NaturalBuild      Builtin = "Natural/build"
	NaturalFold       Builtin = "Natural/fold"
	NaturalIsZero     Builtin = "Natural/isZero"
	NaturalEven       Builtin = "Natural/even"
	NaturalOdd        Builtin = "Natural/odd"
	NaturalToInteger  Builtin = "Natural/toInteger"
	NaturalShow       Builtin = "Natural/show"
	NaturalSubtract   Builtin = "Natural/subtract"
	IntegerToDouble   Builtin = "Integer/toDouble"
	IntegerShow       Builtin = "Integer/show"
	IntegerNegate     Builtin = "Integer/negate"
	IntegerClamp      Builtin = "Integer/clamp"
	DoubleShow        Builtin = "Double/show"
	OptionalBuild     Builtin = "Optional/build"
	OptionalFold      Builtin = "Optional/fold"
	ListBuild         Builtin = "List/build"
	ListFold          Builtin = "List/fold"
	ListLength        Builtin = "List/length"
	ListHead          Builtin = "List/head"
	ListLast          Builtin = "List/last"
	ListIndexed       Builtin = "List/indexed"
	ListReverse       Builtin = "List/reverse"
	TextShow          Builtin = "Text/show"
	TextReplace       Builtin = "Text/replace"
)
