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

// Package hexparse parses hexadecimal text into unsigned integers of a
// fixed width.
//
// It is the fallible operation behind the hexffi boundary. Every failure is
// a *hexffi.Error with a freshly captured trace and no cause; the boundary
// decides what to do with it.
package hexparse

import (
	"unicode/utf8"

	"dirpx.dev/hexffi"
)

// Prefix is the optional marker stripped before digit scanning. The match
// is case-insensitive on the 'x' and happens at most once.
const Prefix = "0x"

// Text validates that b is UTF-8 and returns it as a string.
func Text(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", hexffi.InvalidUTF8()
	}
	return string(b), nil
}

// TrimPrefix removes one leading "0x" or "0X" from s.
func TrimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Parse interprets s as hexadecimal and returns its value, which fits in
// bitSize bits. bitSize must be 8, 16, 32 or 64; any other value panics.
//
// Checks, in order:
//   - s must be valid UTF-8 (InvalidUTF8);
//   - after TrimPrefix, s must be non-empty (InvalidFormat);
//   - each rune must be a hex digit (InvalidHexDigit with the first offender);
//   - the value must fit bitSize, checked before every multiply and every
//     add (Overflow). Nothing wraps around.
//
// The returned error is always a *hexffi.Error.
func Parse(s string, bitSize int) (uint64, error) {
	limit := maxValue(bitSize)

	if !utf8.ValidString(s) {
		return 0, hexffi.InvalidUTF8()
	}
	digits := TrimPrefix(s)
	if digits == "" {
		return 0, hexffi.InvalidFormat()
	}

	var v uint64
	for _, r := range digits {
		d, ok := digit(r)
		if !ok {
			return 0, hexffi.InvalidHexDigit(r)
		}
		if v > limit>>4 {
			return 0, hexffi.Overflow()
		}
		v <<= 4
		if v > limit-uint64(d) {
			return 0, hexffi.Overflow()
		}
		v += uint64(d)
	}
	return v, nil
}

// ParseBytes runs Text then Parse.
func ParseBytes(b []byte, bitSize int) (uint64, error) {
	s, err := Text(b)
	if err != nil {
		return 0, err
	}
	return Parse(s, bitSize)
}

// Uint8 parses s into 8 bits.
func Uint8(s string) (uint8, error) {
	v, err := Parse(s, 8)
	return uint8(v), err
}

// Uint16 parses s into 16 bits.
func Uint16(s string) (uint16, error) {
	v, err := Parse(s, 16)
	return uint16(v), err
}

// Uint32 parses s into 32 bits.
func Uint32(s string) (uint32, error) {
	v, err := Parse(s, 32)
	return uint32(v), err
}

// Uint64 parses s into 64 bits.
func Uint64(s string) (uint64, error) {
	return Parse(s, 64)
}

func maxValue(bitSize int) uint64 {
	switch bitSize {
	case 8, 16, 32:
		return 1<<uint(bitSize) - 1
	case 64:
		return ^uint64(0)
	}
	panic("hexparse: invalid bit size")
}

func digit(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
