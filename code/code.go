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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Code is a boundary status code.
//
// It is a uint32 so it can be handed to C unchanged (uint32_t). Zero is
// success; every other known value identifies exactly one error kind.
type Code uint32

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a known code.
	ErrCodeInvalid = errors.New("code: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into JSON views and CLI flags.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse accepts either a canonical name ("invalid_hex_digit") or a decimal
// number ("3"). Names are normalized first, see Normalize.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if c, ok := byName[s]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return OK, ErrCodeInvalid
	}
	c := Code(n)
	if !c.Known() {
		return OK, ErrCodeInvalid
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims spaces, lowercases and replaces '-' with '_'. It does not
// validate the result.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c is a known error code. OK is not an error code
// and is rejected.
func Validate(c Code) error {
	if c == OK || !c.Known() {
		return ErrCodeInvalid
	}
	return nil
}

// Known reports whether c is OK or one of the error codes.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// String returns the canonical name, or "code(N)" for unknown values.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown codes are rejected so that they never leak into payloads.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Known() {
		return nil, ErrCodeInvalid
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
