/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package hexffi

import (
	"dirpx.dev/hexffi/apis"
	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/reason"
	"dirpx.dev/hexffi/trace"
)

// Common is the payload shared by every Error kind.
//
// Both fields are set once by the constructor:
//   - cause: the error this one wraps, if any (owned, never mutated);
//   - trace: the stack captured when the value was built, if any.
type Common struct {
	cause *Error
	trace *trace.Trace
}

// Source returns the stored cause, or nil. Ownership does not move: the
// returned value is shared and immutable.
func (c Common) Source() *Error { return c.cause }

// Trace returns the stored trace snapshot, or nil when none was captured.
func (c Common) Trace() *trace.Trace { return c.trace }

// Error is the hexffi error value.
//
// It carries:
//   - the Kind (which determines Code, Message and Reason);
//   - the offending character, for KindInvalidHexDigit only;
//   - the Common payload (cause and trace).
//
// An *Error is never modified after its constructor returns, so it can be
// shared freely, including through several boundary handles at once.
type Error struct {
	kind Kind
	char rune
	Common
}

var (
	_ error              = (*Error)(nil)
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.TracedError   = (*Error)(nil)
)

// Sentinels for errors.Is. They carry no trace and no cause; matching is
// by kind only (see Is).
var (
	ErrNullPointer     = New(KindNullPointer, WithoutTrace())
	ErrInvalidFormat   = New(KindInvalidFormat, WithoutTrace())
	ErrInvalidHexDigit = New(KindInvalidHexDigit, WithoutTrace())
	ErrOverflow        = New(KindOverflow, WithoutTrace())
	ErrInvalidUTF8     = New(KindInvalidUTF8, WithoutTrace())
)

// New builds an Error of the given kind with a fresh trace starting at the
// caller of New. For KindInvalidHexDigit prefer InvalidHexDigit, which also
// records the character.
func New(k Kind, opts ...Option) *Error {
	return newError(k, 0, opts)
}

// Wrap builds an Error of kind k whose cause is cause. It is the only way,
// besides WithCause, to populate a cause.
func Wrap(k Kind, cause *Error, opts ...Option) *Error {
	return newError(k, 0, append(opts[:len(opts):len(opts)], WithCause(cause)))
}

// NullPointer reports a required pointer that was NULL.
func NullPointer(opts ...Option) *Error {
	return newError(KindNullPointer, 0, opts)
}

// InvalidFormat reports input that is empty or malformed before digit parsing.
func InvalidFormat(opts ...Option) *Error {
	return newError(KindInvalidFormat, 0, opts)
}

// InvalidHexDigit reports the first character outside [0-9a-fA-F].
func InvalidHexDigit(ch rune, opts ...Option) *Error {
	return newError(KindInvalidHexDigit, ch, opts)
}

// Overflow reports a value that does not fit the target width.
func Overflow(opts ...Option) *Error {
	return newError(KindOverflow, 0, opts)
}

// InvalidUTF8 reports input bytes that are not valid UTF-8.
func InvalidUTF8(opts ...Option) *Error {
	return newError(KindInvalidUTF8, 0, opts)
}

// newError must be called directly by the exported constructors: the trace
// skip below assumes exactly one frame between it and the user call site.
func newError(k Kind, ch rune, opts []Option) *Error {
	o := options{trace: true}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Error{kind: k, char: ch}
	e.cause = o.cause
	if o.trace {
		e.trace = trace.CaptureDepth(2, o.depth)
	}
	return e
}

// Kind returns the variant of e.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the boundary code. It depends only on the kind.
func (e *Error) Code() code.Code { return e.kind.Code() }

// Reason returns the dotted reason of the kind.
func (e *Error) Reason() reason.Reason { return e.kind.Reason() }

// Char returns the offending character of an InvalidHexDigit error.
// ok is false for every other kind.
func (e *Error) Char() (ch rune, ok bool) {
	if e.kind != KindInvalidHexDigit {
		return 0, false
	}
	return e.char, true
}

// Message returns the human-readable text of e alone, without its causes:
//
//	Null pointer
//	Invalid format
//	Invalid hex digit: g
//	Overflow
//	Invalid UTF-8
func (e *Error) Message() string {
	if e.kind == KindInvalidHexDigit {
		return e.kind.message() + ": " + string(e.char)
	}
	return e.kind.message()
}

// Error implements the built-in error interface. The causes, if any, are
// appended after ": ", outermost first.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.cause.Error()
}

// Unwrap returns the cause for errors.Is / errors.As. It returns a nil
// interface, not a typed nil, when there is no cause.
func (e *Error) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error of the same kind. An
// InvalidHexDigit target with a zero character matches any character.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.kind != e.kind {
		return false
	}
	return t.char == 0 || t.char == e.char
}

// Chain returns e followed by each cause in order. The chain always
// terminates because causes are fixed at construction.
func (e *Error) Chain() []*Error {
	var out []*Error
	for cur := e; cur != nil; cur = cur.cause {
		out = append(out, cur)
	}
	return out
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() uint32 { return uint32(e.Code()) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason()) }

// ErrorTrace implements apis.TracedError. It returns "" when no trace was
// captured.
func (e *Error) ErrorTrace() string { return e.trace.String() }
