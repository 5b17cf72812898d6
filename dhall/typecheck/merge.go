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
	"dhall-lang.org/go/dhall/errors"
	"dhall-lang.org/go/dhall/tyenv"
	"dhall-lang.org/go/dhall/value"
)

// typeMerge implements merge's judgment: the handlers record and the
// union/Optional being matched must agree
// variant-for-variant, every with-type handler's return type must not
// depend on the payload it receives, and every variant's result must
// agree on one common type — either inferred from the handlers or
// cross-checked against an explicit annotation.
func typeMerge(env *tyenv.TyEnv, norm value.Normalizer, e *dhallast.Merge) (*TyExpr, error) {
	th, err := TypeWith(env, norm, e.Handlers)
	if err != nil {
		return nil, err
	}
	handlers, ok := th.Type.(value.RecordType)
	if !ok {
		return nil, errors.NewTypeError(errors.ErrMerge1ArgMustBeRecord, e.Handlers.Span(), "merge handlers must be a record")
	}

	if _, err := TypeWith(env, norm, e.Union); err != nil {
		return nil, err
	}
	unionNF := evalType(norm, e.Union, env.AsNzEnv())
	alternatives, ok := asMergeableUnion(unionNF)
	if !ok {
		return nil, errors.NewTypeError(errors.ErrMerge2ArgMustBeUnionOrOptional, e.Union.Span(), "merge's second argument must be a union or an Optional")
	}

	for label := range handlers.Fields {
		if _, ok := alternatives.Alternatives[label]; !ok {
			return nil, errors.NewTypeError(errors.ErrMergeHandlerMissingVariant, e.Handlers.Span(), "handler %s has no matching variant", label)
		}
	}

	var resultType value.Value
	for _, label := range alternatives.Order {
		payload := alternatives.Alternatives[label]
		handlerT, ok := handlers.Fields[label]
		if !ok {
			return nil, errors.NewTypeError(errors.ErrMergeVariantMissingHandler, e.Span(), "variant %s has no matching handler", label)
		}

		var variantResult value.Value
		if payload == nil {
			variantResult = handlerT
		} else {
			pi, ok := handlerT.(value.PiClosure)
			if !ok {
				return nil, errors.NewTypeError(errors.ErrNotAFunction, e.Handlers.Span(), "handler for %s must be a function", label)
			}
			if !value.Equal(pi.Annot, payload) {
				return nil, errors.Mismatch(errors.ErrMergeHandlerTypeMismatch, e.Handlers.Span(), "handler "+string(label), payload, pi.Annot)
			}
			body, ok := pi.Closure.RemoveBinder()
			if !ok {
				return nil, errors.NewTypeError(errors.ErrMergeReturnTypeIsDependent, e.Handlers.Span(), "handler %s's result type must not depend on its argument", label)
			}
			variantResult = body
		}

		if resultType == nil {
			resultType = variantResult
		} else if !value.Equal(resultType, variantResult) {
			return nil, errors.Mismatch(errors.ErrMergeHandlerTypeMismatch, e.Span(), "merge result", resultType, variantResult)
		}
	}

	if e.Annotation != nil {
		if _, err := TypeWith(env, norm, e.Annotation); err != nil {
			return nil, err
		}
		annotNF := evalType(norm, e.Annotation, env.AsNzEnv())
		if resultType == nil {
			resultType = annotNF
		} else if !value.Equal(resultType, annotNF) {
			return nil, errors.Mismatch(errors.ErrMergeAnnotMismatch, e.Span(), "merge annotation", annotNF, resultType)
		}
	}

	if resultType == nil {
		return nil, errors.NewTypeError(errors.ErrMergeEmptyNeedsAnnotation, e.Span(), "merge with no handlers requires an annotation")
	}

	return newTyExpr(e, resultType), nil
}

// asMergeableUnion normalizes merge's second argument into the common
// shape typeMerge needs: a union type as written, or an Optional X
// reinterpreted as the two-alternative union `< None | Some : X >`.
func asMergeableUnion(v value.Value) (value.UnionType, bool) {
	switch t := v.(type) {
	case value.UnionType:
		return t, true
	case value.AppliedBuiltin:
		if t.Builtin != dhallast.Optional || len(t.Args) != 1 {
			return value.UnionType{}, false
		}
		return value.UnionType{
			Alternatives: map[dhallast.Label]value.Value{
				"None": nil,
				"Some": t.Args[0],
			},
			Order: []dhallast.Label{"None", "Some"},
		}, true
	default:
		return value.UnionType{}, false
	}
}
