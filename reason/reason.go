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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, dot-separated identifier of one to four segments.
// Each segment starts with a lowercase letter and continues with lowercase
// letters, digits or underscores.
type Reason string

const (
	// MinLength is the minimum length of a non-empty reason.
	MinLength = 3

	// MaxLength is the maximum length of a reason.
	MaxLength = 128
)

// reasonFmt accepts 1..4 segments of [a-z][a-z0-9_]*.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match reasonFmt.
	ErrReasonInvalidFormat = errors.New("reason: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("reason: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the "no reason" value.
var Empty Reason = ""

// Normalize trims spaces, lowercases, turns '/' into '.' and '-' into '_'.
// It does not validate the result.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty and no error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("reason: empty reason in MustParse")
	}
	return r
}

// Validate checks that r is Empty or canonical.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r on '.'. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether prefix matches r on whole segments, so
// "hexffi.parse" matches "hexffi.parse.overflow" but "hexffi.pa" does not.
// A "*" segment in prefix matches exactly one segment of r.
func (r Reason) HasPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	want := strings.Split(prefix, ".")
	have := r.Segments()
	if len(want) > len(have) {
		return false
	}
	for i, seg := range want {
		if seg != "*" && seg != have[i] {
			return false
		}
	}
	return true
}

// String returns the reason as a plain string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
