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
	"github.com/mpvl/unique"

	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/errors"
	"dhall-lang.org/go/dhall/tyenv"
	"dhall-lang.org/go/dhall/value"
)

// labelSlice adapts []dhallast.Label to mpvl/unique.Interface so
// duplicate-key detection (record literals, record/union types,
// projections) reuses one sort-then-shrink routine instead of a
// bespoke seen-set at every call site.
type labelSlice []dhallast.Label

func (s *labelSlice) Len() int           { return len(*s) }
func (s *labelSlice) Less(i, j int) bool { return (*s)[i] < (*s)[j] }
func (s *labelSlice) Swap(i, j int)      { (*s)[i], (*s)[j] = (*s)[j], (*s)[i] }
func (s *labelSlice) Truncate(n int)     { *s = (*s)[:n] }

// findDuplicateLabel reports the first (in source order) label that
// repeats in order, if any.
func findDuplicateLabel(order []dhallast.Label) (dhallast.Label, bool) {
	if len(order) < 2 {
		return "", false
	}
	sorted := append(labelSlice(nil), order...)
	before := len(sorted)
	unique.Sort(&sorted)
	if len(sorted) == before {
		return "", false
	}
	seen := make(map[dhallast.Label]bool, len(order))
	for _, l := range order {
		if seen[l] {
			return l, true
		}
		seen[l] = true
	}
	return "", false
}

func typeRecordLit(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.RecordLit) (*TyExpr, error) {
	if dup, ok := findDuplicateLabel(e.Order); ok {
		return nil, errors.NewTypeError(errors.ErrRecordTypeDuplicateField, e.Span(), "duplicate field: %s", dup)
	}
	fields := make(map[dhallast.Label]value.Value, len(e.Order))
	for _, l := range e.Order {
		tv, err := TypeWith(env, norm, e.Fields[l])
		if err != nil {
			return nil, err
		}
		fields[l] = tv.Type
	}
	return newTyExpr(e, value.RecordType{Fields: fields, Order: append([]dhallast.Label(nil), e.Order...)}), nil
}

func typeRecordType(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.RecordType) (*TyExpr, error) {
	if dup, ok := findDuplicateLabel(e.Order); ok {
		return nil, errors.NewTypeError(errors.ErrRecordTypeDuplicateField, e.Span(), "duplicate field: %s", dup)
	}
	result := dhallast.Type
	for _, l := range e.Order {
		tv, err := TypeWith(env, norm, e.Fields[l])
		if err != nil {
			return nil, err
		}
		c, ok := asConst(tv.Type)
		if !ok {
			return nil, errors.NewTypeError(errors.ErrInvalidFieldType, e.Fields[l].Span(), "record type field %s must be a type", l)
		}
		result = dhallast.MaxConst(result, c)
	}
	return newTyExpr(e, value.ConstVal{Const: result}), nil
}

func typeUnionType(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.UnionType) (*TyExpr, error) {
	if dup, ok := findDuplicateLabel(e.Order); ok {
		return nil, errors.NewTypeError(errors.ErrUnionTypeDuplicateField, e.Span(), "duplicate alternative: %s", dup)
	}
	result := dhallast.Type
	for _, l := range e.Order {
		alt := e.Alternatives[l]
		if alt == nil {
			continue
		}
		tv, err := TypeWith(env, norm, alt)
		if err != nil {
			return nil, err
		}
		c, ok := asConst(tv.Type)
		if !ok {
			return nil, errors.NewTypeError(errors.ErrInvalidFieldType, alt.Span(), "union alternative %s must be a type", l)
		}
		result = dhallast.MaxConst(result, c)
	}
	return newTyExpr(e, value.ConstVal{Const: result}), nil
}

func typeField(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.Field) (*TyExpr, error) {
	ts, err := TypeWith(env, norm, e.Record)
	if err != nil {
		return nil, err
	}
	if rt, ok := ts.Type.(value.RecordType); ok {
		ft, ok := rt.Fields[e.Label]
		if !ok {
			return nil, errors.NewTypeError(errors.ErrMissingRecordField, e.Span(), "missing record field: %s", e.Label)
		}
		return newTyExpr(e, ft), nil
	}

	scrutNF := evalType(norm, e.Record, env.AsNzEnv())
	if ut, ok := scrutNF.(value.UnionType); ok {
		alt, ok := ut.Alternatives[e.Label]
		if !ok {
			return nil, errors.NewTypeError(errors.ErrMissingUnionField, e.Span(), "missing union alternative: %s", e.Label)
		}
		if alt == nil {
			return newTyExpr(e, scrutNF), nil
		}
		// The constructor for a with-type alternative is non-dependent:
		// applying it to any payload always yields a value of the same
		// union type, so a plain ConstClosure suffices.
		closure := value.ConstClosure{Body: scrutNF}
		return newTyExpr(e, value.PiClosure{Binder: e.Label, Annot: alt, Closure: closure}), nil
	}

	// No fast path for a Const scrutinee here.
	return nil, errors.NewTypeError(errors.ErrNotARecord, e.Span(), "field access on a non-record, non-union value")
}

func typeProjection(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.Projection) (*TyExpr, error) {
	tr, err := TypeWith(env, norm, e.Record)
	if err != nil {
		return nil, err
	}
	rt, ok := tr.Type.(value.RecordType)
	if !ok {
		return nil, errors.NewTypeError(errors.ErrProjectionMustBeRecord, e.Span(), "projection scrutinee must be a record")
	}
	if dup, ok := findDuplicateLabel(e.Labels); ok {
		return nil, errors.NewTypeError(errors.ErrProjectionDuplicateField, e.Span(), "duplicate field in projection: %s", dup)
	}
	fields := make(map[dhallast.Label]value.Value, len(e.Labels))
	for _, l := range e.Labels {
		ft, ok := rt.Fields[l]
		if !ok {
			return nil, errors.NewTypeError(errors.ErrProjectionMissingEntry, e.Span(), "projection missing field: %s", l)
		}
		fields[l] = ft
	}
	return newTyExpr(e, value.RecordType{Fields: fields, Order: append([]dhallast.Label(nil), e.Labels...)}), nil
}
