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
	"strconv"

	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/reason"
)

// Kind discriminates the variants of Error.
//
// The set is closed. Adding a kind means extending every switch in this
// file and appending a code in package code, in the same change.
type Kind uint8

const (
	// KindNullPointer: a required input pointer was absent.
	KindNullPointer Kind = iota + 1
	// KindInvalidFormat: input was empty or malformed before digit parsing.
	KindInvalidFormat
	// KindInvalidHexDigit: a character outside [0-9a-fA-F] was found.
	KindInvalidHexDigit
	// KindOverflow: the value exceeded the target width.
	KindOverflow
	// KindInvalidUTF8: input bytes were not valid UTF-8.
	KindInvalidUTF8
)

// Kinds returns every kind in code order.
func Kinds() []Kind {
	return []Kind{
		KindNullPointer,
		KindInvalidFormat,
		KindInvalidHexDigit,
		KindOverflow,
		KindInvalidUTF8,
	}
}

// Code returns the boundary code of k. Unknown kinds map to code.OK, which
// no constructor can produce.
func (k Kind) Code() code.Code {
	switch k {
	case KindNullPointer:
		return code.NullPointer
	case KindInvalidFormat:
		return code.InvalidFormat
	case KindInvalidHexDigit:
		return code.InvalidHexDigit
	case KindOverflow:
		return code.Overflow
	case KindInvalidUTF8:
		return code.InvalidUTF8
	}
	return code.OK
}

// Reason returns the dotted reason reported by transport adapters.
func (k Kind) Reason() reason.Reason {
	switch k {
	case KindNullPointer:
		return "hexffi.input.null_pointer"
	case KindInvalidFormat:
		return "hexffi.input.format"
	case KindInvalidHexDigit:
		return "hexffi.parse.hex_digit"
	case KindOverflow:
		return "hexffi.parse.overflow"
	case KindInvalidUTF8:
		return "hexffi.input.utf8"
	}
	return reason.Empty
}

// String returns the variant name, e.g. "InvalidHexDigit".
func (k Kind) String() string {
	switch k {
	case KindNullPointer:
		return "NullPointer"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindInvalidHexDigit:
		return "InvalidHexDigit"
	case KindOverflow:
		return "Overflow"
	case KindInvalidUTF8:
		return "InvalidUTF8"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// KindOf is the inverse of Kind.Code.
func KindOf(c code.Code) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Code() == c {
			return k, true
		}
	}
	return 0, false
}

// message is the fixed text of each kind. InvalidHexDigit appends its
// character in Error.Message.
func (k Kind) message() string {
	switch k {
	case KindNullPointer:
		return "Null pointer"
	case KindInvalidFormat:
		return "Invalid format"
	case KindInvalidHexDigit:
		return "Invalid hex digit"
	case KindOverflow:
		return "Overflow"
	case KindInvalidUTF8:
		return "Invalid UTF-8"
	}
	return "Unknown error"
}
