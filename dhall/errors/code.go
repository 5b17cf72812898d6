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
	"fmt"

	"github.com/kr/pretty"

	"dhall-lang.org/go/dhall/dhallast"
)

// ErrorCode tags the kind of a TypeError, similar in spirit to how a
// unification engine tags a failure value with a reason code. A Code
// here never influences control flow — there is no local recovery
// within type_one_layer/type_with — it only identifies the message tag
// for callers and tests.
type ErrorCode int16

const (
	ErrUnboundVariable ErrorCode = iota

	ErrInvalidInputType
	ErrInvalidOutputType
	ErrInvalidFieldType

	ErrInvalidListType
	ErrInvalidListElement
	ErrInvalidOptionalType
	ErrInvalidTextInterpolation

	ErrRecordTypeDuplicateField
	ErrUnionTypeDuplicateField
	ErrMissingRecordField
	ErrMissingUnionField
	ErrNotARecord

	ErrApplyToNotPi
	ErrFunctionAnnotMismatch

	ErrInvalidPredicate
	ErrIfBranchMustBeTerm
	ErrIfBranchMismatch

	ErrMustCombineRecord
	ErrRecordTypeMergeRequiresRecordType
	ErrBinOpTypeMismatch
	ErrEquivalenceTypeMismatch
	ErrEquivalenceArgumentsMustBeTerms

	ErrMerge1ArgMustBeRecord
	ErrMerge2ArgMustBeUnionOrOptional
	ErrMergeHandlerTypeMismatch
	ErrMergeHandlerMissingVariant
	ErrMergeVariantMissingHandler
	ErrMergeReturnTypeIsDependent
	ErrMergeAnnotMismatch
	ErrMergeEmptyNeedsAnnotation
	ErrNotAFunction

	ErrProjectionMustBeRecord
	ErrProjectionMissingEntry
	ErrProjectionDuplicateField

	ErrAnnotMismatch

	ErrAssertMismatch
	ErrAssertMustTakeEquivalence

	ErrImportCycle

	ErrUnimplemented

	// ErrLogic marks an invariant violation rather than a user-facing
	// type error — e.g. an Import node reaching type_with. It is
	// fatal like every other TypeError but callers should treat its
	// appearance as a bug in the caller, not in the Dhall program.
	ErrLogic
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnboundVariable:
		return "unbound variable"
	case ErrInvalidInputType:
		return "invalid function input type"
	case ErrInvalidOutputType:
		return "invalid function output type"
	case ErrInvalidFieldType:
		return "invalid field type"
	case ErrInvalidListType:
		return "invalid list type"
	case ErrInvalidListElement:
		return "invalid list element"
	case ErrInvalidOptionalType:
		return "invalid optional type"
	case ErrInvalidTextInterpolation:
		return "invalid text interpolation"
	case ErrRecordTypeDuplicateField:
		return "duplicate record field"
	case ErrUnionTypeDuplicateField:
		return "duplicate union alternative"
	case ErrMissingRecordField:
		return "missing record field"
	case ErrMissingUnionField:
		return "missing union alternative"
	case ErrNotARecord:
		return "not a record"
	case ErrApplyToNotPi:
		return "apply to not Pi"
	case ErrFunctionAnnotMismatch:
		return "function annot mismatch"
	case ErrInvalidPredicate:
		return "invalid predicate"
	case ErrIfBranchMustBeTerm:
		return "if branch must be a term"
	case ErrIfBranchMismatch:
		return "if branch mismatch"
	case ErrMustCombineRecord:
		return "must combine record"
	case ErrRecordTypeMergeRequiresRecordType:
		return "record type merge requires record type"
	case ErrBinOpTypeMismatch:
		return "binop type mismatch"
	case ErrEquivalenceTypeMismatch:
		return "equivalence type mismatch"
	case ErrEquivalenceArgumentsMustBeTerms:
		return "equivalence arguments must be terms"
	case ErrMerge1ArgMustBeRecord:
		return "merge first argument must be a record"
	case ErrMerge2ArgMustBeUnionOrOptional:
		return "merge second argument must be a union or optional"
	case ErrMergeHandlerTypeMismatch:
		return "merge handler type mismatch"
	case ErrMergeHandlerMissingVariant:
		return "merge handler missing variant"
	case ErrMergeVariantMissingHandler:
		return "merge variant missing handler"
	case ErrMergeReturnTypeIsDependent:
		return "merge return type is dependent"
	case ErrMergeAnnotMismatch:
		return "merge annot mismatch"
	case ErrMergeEmptyNeedsAnnotation:
		return "merge with empty handlers needs annotation"
	case ErrNotAFunction:
		return "not a function"
	case ErrProjectionMustBeRecord:
		return "projection must be a record"
	case ErrProjectionMissingEntry:
		return "projection missing entry"
	case ErrProjectionDuplicateField:
		return "duplicate field in projection"
	case ErrAnnotMismatch:
		return "annot mismatch"
	case ErrAssertMismatch:
		return "assert mismatch"
	case ErrAssertMustTakeEquivalence:
		return "assert must take an equivalence"
	case ErrImportCycle:
		return "import cycle"
	case ErrUnimplemented:
		return "unimplemented"
	case ErrLogic:
		return "internal logic error"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int16(c))
	}
}

// TypeError is the one error type the typechecker and import
// environment surface, tagged by ErrorCode. Unlike a unification
// engine's bottom value, a TypeError carries no control-flow role: all
// TypeErrors are fatal and surfaced, never recovered from locally.
type TypeError struct {
	Code ErrorCode
	pos  dhallast.Span
	Message
}

func (e *TypeError) Position() dhallast.Span { return e.pos }

func (e *TypeError) Error() string {
	msg := e.Message.Error()
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.pos, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// NewTypeError builds a TypeError tagged with code at pos.
func NewTypeError(code ErrorCode, pos dhallast.Span, format string, args ...any) *TypeError {
	return &TypeError{Code: code, pos: pos, Message: NewMessage(format, args)}
}

// Mismatch renders an "expected vs actual" TypeError using
// kr/pretty's structural diff to make a nested Value's shape legible,
// rather than a bare %v, which on a Value/ValueKind tree is unreadable.
func Mismatch(code ErrorCode, pos dhallast.Span, what string, expected, actual any) *TypeError {
	return NewTypeError(code, pos, "%s mismatch:\n  expected: %s\n  actual:   %s",
		what, pretty.Sprint(expected), pretty.Sprint(actual))
}
