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

package value

import "reflect"

// freeVarCounter hands out markers unique within a process, used only
// to decide Pi/closure equality (see Equal). Two runs of Equal never
// share a marker, so a closure can never accidentally treat an
// unrelated placeholder as its own bound variable.
var freeVarCounter int64

func freshPlaceholder() Value {
	freeVarCounter++
	return Opaque{Data: placeholderID(freeVarCounter)}
}

type placeholderID int64

// Equal reports whether two normalized values denote the same type,
// the operation nearly every judgment in type_one_layer needs under
// the name `type_of(x) == type_of(y)`. Pi equality is decided the
// normalization-by-evaluation way: apply both closures to the same
// fresh placeholder value (one that appears nowhere else in either
// term) and compare what comes back.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case ConstVal:
		bv, ok := b.(ConstVal)
		return ok && av.Const == bv.Const
	case AppliedBuiltin:
		bv, ok := b.(AppliedBuiltin)
		if !ok || av.Builtin != bv.Builtin || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case RecordType:
		bv, ok := b.(RecordType)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for l, t := range av.Fields {
			bt, ok := bv.Fields[l]
			if !ok || !Equal(t, bt) {
				return false
			}
		}
		return true
	case UnionType:
		bv, ok := b.(UnionType)
		if !ok || len(av.Alternatives) != len(bv.Alternatives) {
			return false
		}
		for l, t := range av.Alternatives {
			bt, ok := bv.Alternatives[l]
			if !ok {
				return false
			}
			if t == nil || bt == nil {
				if t != nil || bt != nil {
					return false
				}
				continue
			}
			if !Equal(t, bt) {
				return false
			}
		}
		return true
	case PiClosure:
		bv, ok := b.(PiClosure)
		if !ok || !Equal(av.Annot, bv.Annot) {
			return false
		}
		fresh := freshPlaceholder()
		return Equal(av.Closure.Apply(fresh), bv.Closure.Apply(fresh))
	case Equivalence:
		bv, ok := b.(Equivalence)
		return ok && Equal(av.L, bv.L) && Equal(av.R, bv.R)
	case Opaque:
		bv, ok := b.(Opaque)
		return ok && reflect.DeepEqual(av.Data, bv.Data)
	default:
		return false
	}
}
