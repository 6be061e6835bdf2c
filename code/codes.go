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

// Boundary status codes.
//
// The order of this block is the ABI. Append only.
const (
	// OK is the success status. No error ever carries it.
	OK Code = 0

	// NullPointer indicates that a required pointer argument (input text or
	// result out-parameter) was NULL.
	NullPointer Code = 1

	// InvalidFormat indicates that the input was structurally empty or
	// malformed before digit-level parsing started, e.g. "" or a bare "0x".
	InvalidFormat Code = 2

	// InvalidHexDigit indicates that a character outside [0-9a-fA-F] was
	// found. The error carries the first offending character.
	InvalidHexDigit Code = 3

	// Overflow indicates that the accumulated value does not fit the target
	// integer width.
	Overflow Code = 4

	// InvalidUTF8 indicates that the input bytes were not valid UTF-8.
	InvalidUTF8 Code = 5
)

// names holds the canonical name of every known code, OK included.
var names = map[Code]string{
	OK:              "ok",
	NullPointer:     "null_pointer",
	InvalidFormat:   "invalid_format",
	InvalidHexDigit: "invalid_hex_digit",
	Overflow:        "overflow",
	InvalidUTF8:     "invalid_utf8",
}

// byName is the reverse of names, built once from the same table so the two
// cannot drift.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()

// all is the ordered set of error codes (OK excluded).
var all = []Code{
	NullPointer,
	InvalidFormat,
	InvalidHexDigit,
	Overflow,
	InvalidUTF8,
}

// All returns a copy of every error code in numeric order. OK is not included.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}
