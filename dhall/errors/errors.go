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

// Package errors defines the shared error type surfaced by the
// typechecker and import environment: a position, an unformatted
// message, and list-flattening Append, scoped to what a flat
// expression tree (no nested configuration path) needs.
package errors

import (
	"fmt"
	"strings"

	"dhall-lang.org/go/dhall/dhallast"
)

// Error is the common error interface. Every error this module
// surfaces (TypeError, importenv's ImportCycleError) implements
// it.
type Error interface {
	error
	Position() dhallast.Span
	Msg() (format string, args []any)

	// Path returns the path into the expression tree where the error
	// occurred. Always empty here: this module's tree has no nested
	// configuration path to report one against, unlike cue/errors'
	// field-path rendering.
	Path() string
}

// Message holds an unformatted error message and its arguments:
// keeping format and args separate lets callers re-render (e.g.
// without position, or as JSON) without re-parsing a fmt.Sprintf'd
// string.
type Message struct {
	format string
	args   []any
}

func NewMessage(format string, args []any) Message { return Message{format, args} }

func (m Message) Msg() (string, []any) { return m.format, m.args }
func (m Message) Error() string        { return fmt.Sprintf(m.format, m.args...) }
func (m Message) Path() string         { return "" }

type posError struct {
	pos dhallast.Span
	Message
}

func (e *posError) Position() dhallast.Span { return e.pos }

func (e *posError) Error() string {
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.pos, e.Message.Error())
	}
	return e.Message.Error()
}

// Newf creates an Error at the given position.
func Newf(pos dhallast.Span, format string, args ...any) Error {
	return &posError{pos: pos, Message: NewMessage(format, args)}
}

// Wrapf creates an Error at pos whose rendering chains an underlying
// error for context, the way cue/errors.Wrapf attaches a child cause
// to a freshly constructed parent message.
func Wrapf(err error, pos dhallast.Span, format string, args ...any) Error {
	return &wrapped{main: &posError{pos: pos, Message: NewMessage(format, args)}, wrap: err}
}

// wrapped pairs a parent Error with a subordinate cause, trimmed of
// cue/errors.wrapped's InputPositions/Is/As plumbing since nothing in
// this module chains more than one cause deep.
type wrapped struct {
	main Error
	wrap error
}

func (e *wrapped) Position() dhallast.Span { return e.main.Position() }
func (e *wrapped) Msg() (string, []any)    { return e.main.Msg() }
func (e *wrapped) Path() string            { return e.main.Path() }
func (e *wrapped) Unwrap() error           { return e.wrap }

func (e *wrapped) Error() string {
	msg := e.main.Error()
	if e.wrap == nil {
		return msg
	}
	return fmt.Sprintf("%s: %s", msg, e.wrap)
}

// List is a flattened sequence of Errors that itself satisfies Error,
// rendering every member on its own line.
type List []Error

var _ Error = List(nil)

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

func (l List) Position() dhallast.Span {
	if len(l) == 0 {
		return dhallast.NoSpan
	}
	return l[0].Position()
}

func (l List) Msg() (string, []any) {
	if len(l) == 0 {
		return "", nil
	}
	return l[0].Msg()
}

func (l List) Path() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Path()
}

// Append combines a and b, flattening either that is already a List
// rather than nesting lists of lists, mirroring cue/errors.Append.
func Append(a, b Error) Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	var out List
	if l, ok := a.(List); ok {
		out = append(out, l...)
	} else {
		out = append(out, a)
	}
	if l, ok := b.(List); ok {
		out = append(out, l...)
	} else {
		out = append(out, b)
	}
	return out
}

