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
	"encoding"
	"testing"
)

func TestCodes_AreStable(t *testing.T) {
	// These numbers are part of the C ABI.
	want := map[Code]uint32{
		OK:              0,
		NullPointer:     1,
		InvalidFormat:   2,
		InvalidHexDigit: 3,
		Overflow:        4,
		InvalidUTF8:     5,
	}
	for c, n := range want {
		if uint32(c) != n {
			t.Fatalf("%s = %d, want %d", c, uint32(c), n)
		}
	}
}

func TestAll_OrderedAndCopied(t *testing.T) {
	got := All()
	if len(got) != 5 {
		t.Fatalf("All() len = %d, want 5", len(got))
	}
	for i, c := range got {
		if uint32(c) != uint32(i+1) {
			t.Fatalf("All()[%d] = %d, want %d", i, c, i+1)
		}
	}
	got[0] = Overflow
	if All()[0] != NullPointer {
		t.Fatal("All() exposed its backing slice")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  overflow  ", "overflow"},
		{"to lower", "OverFlow", "overflow"},
		{"dash to underscore", "invalid-hex-digit", "invalid_hex_digit"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"name", "null_pointer", NullPointer},
		{"name upper dash", " INVALID-UTF8 ", InvalidUTF8},
		{"number", "3", InvalidHexDigit},
		{"number with spaces", " 4 ", Overflow},
		{"ok name", "ok", OK},
		{"ok number", "0", OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "6", "-1", "4294967296", "not_found", "0x3"} {
		got, err := Parse(in)
		if err != ErrCodeInvalid {
			t.Fatalf("Parse(%q) err = %v, want ErrCodeInvalid", in, err)
		}
		if got != OK {
			t.Fatalf("Parse(%q) on error must return OK, got %v", in, got)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, c := range All() {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%v) unexpected error: %v", c, err)
		}
	}
	for _, c := range []Code{OK, 6, 42} {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%d) expected error", uint32(c))
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("nope")
}

func TestCode_String(t *testing.T) {
	if got := InvalidHexDigit.String(); got != "invalid_hex_digit" {
		t.Fatalf("String() = %q", got)
	}
	if got := Code(77).String(); got != "code(77)" {
		t.Fatalf("String() for unknown = %q", got)
	}
}

func TestCode_TextRoundTrip(t *testing.T) {
	text, err := Overflow.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "overflow" {
		t.Fatalf("MarshalText() = %q", text)
	}
	if _, err := Code(99).MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unknown code must return error")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  INVALID-FORMAT ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != InvalidFormat {
		t.Fatalf("UnmarshalText() = %v", c)
	}
	if err := c.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}
