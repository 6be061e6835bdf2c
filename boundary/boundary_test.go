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

package boundary

import (
	"strings"
	"testing"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/code"
)

// parse8 mirrors the C entry point hexffi_parse_hex.
func parse8(t *testing.T, in string) (uint8, Handle, code.Code) {
	t.Helper()
	var v uint8
	var h Handle
	st := Parse([]byte(in), &v, &h)
	return v, h, st
}

func mustDestroy(t *testing.T, h Handle) {
	t.Helper()
	if h != 0 {
		Destroy(h)
	}
}

func TestParse_Success(t *testing.T) {
	for in, want := range map[string]uint8{"0x1a": 26, "FF": 255, "00": 0} {
		v, h, st := parse8(t, in)
		if st != code.OK {
			t.Fatalf("Parse(%q) status = %v", in, st)
		}
		if h != 0 {
			t.Fatalf("Parse(%q) issued a handle on success", in)
		}
		if v != want {
			t.Fatalf("Parse(%q) = %d, want %d", in, v, want)
		}
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		in   []byte
		want code.Code
	}{
		{[]byte("0x"), code.InvalidFormat},
		{[]byte{}, code.InvalidFormat},
		{[]byte("1g"), code.InvalidHexDigit},
		{[]byte("256"), code.Overflow},
		{[]byte{0xff, 0xfe}, code.InvalidUTF8},
		{nil, code.NullPointer},
	}
	for _, tt := range tests {
		before := Live()
		v := uint8(7)
		var h Handle
		st := Parse(tt.in, &v, &h)
		if st != tt.want {
			t.Fatalf("Parse(%q) status = %v, want %v", tt.in, st, tt.want)
		}
		if v != 7 {
			t.Fatalf("Parse(%q) wrote the result on failure", tt.in)
		}
		if h == 0 {
			t.Fatalf("Parse(%q) did not issue a handle", tt.in)
		}
		var c code.Code
		if GetCode(h, &c) != code.OK || c != st {
			t.Fatalf("GetCode = %v, want %v", c, st)
		}
		if Live() != before+1 {
			t.Fatalf("Live() = %d, want %d", Live(), before+1)
		}
		Destroy(h)
		if Live() != before {
			t.Fatalf("Destroy did not release: Live() = %d", Live())
		}
	}
}

func TestParse_InvalidHexDigitChar(t *testing.T) {
	_, h, st := parse8(t, "1g")
	defer mustDestroy(t, h)
	if st != code.InvalidHexDigit {
		t.Fatalf("status = %v", st)
	}
	var ch uint32
	if GetChar(h, &ch) != code.OK || ch != 'g' {
		t.Fatalf("GetChar = %q", rune(ch))
	}
	var msg string
	if GetMessage(h, &msg) != code.OK || msg != "Invalid hex digit: g" {
		t.Fatalf("GetMessage = %q", msg)
	}
}

func TestParse_NullResultCheckedFirst(t *testing.T) {
	var h Handle
	st := Parse[uint8](nil, nil, &h)
	defer mustDestroy(t, h)
	if st != code.NullPointer {
		t.Fatalf("status = %v, want null_pointer", st)
	}
	// Bad text must not change the outcome either.
	var h2 Handle
	st = Parse[uint8]([]byte{0xff}, nil, &h2)
	defer mustDestroy(t, h2)
	if st != code.NullPointer {
		t.Fatalf("status with bad text and nil result = %v, want null_pointer", st)
	}
}

func TestParse_NilErrOut(t *testing.T) {
	before := Live()
	var v uint8
	if st := Parse([]byte("zz"), &v, nil); st != code.InvalidHexDigit {
		t.Fatalf("status = %v", st)
	}
	if st := Parse[uint8]([]byte("1"), nil, nil); st != code.NullPointer {
		t.Fatalf("status = %v", st)
	}
	if Live() != before {
		t.Fatal("a dropped error must not stay registered")
	}
}

func TestParse_Widths(t *testing.T) {
	var v16 uint16
	if st := Parse([]byte("0xffff"), &v16, nil); st != code.OK || v16 != 0xffff {
		t.Fatalf("uint16: %v %d", st, v16)
	}
	if st := Parse([]byte("10000"), &v16, nil); st != code.Overflow {
		t.Fatalf("uint16 overflow: %v", st)
	}
	var v32 uint32
	if st := Parse([]byte("DEADBEEF"), &v32, nil); st != code.OK || v32 != 0xdeadbeef {
		t.Fatalf("uint32: %v %x", st, v32)
	}
	var v64 uint64
	if st := Parse([]byte(strings.Repeat("f", 16)), &v64, nil); st != code.OK || v64 != ^uint64(0) {
		t.Fatalf("uint64: %v %x", st, v64)
	}
	if st := Parse([]byte(strings.Repeat("f", 17)), &v64, nil); st != code.Overflow {
		t.Fatalf("uint64 overflow: %v", st)
	}
}

func TestAccessors_AllKinds(t *testing.T) {
	want := map[string]string{
		"":    "Invalid format",
		"x":   "Invalid hex digit: x",
		"1ff": "Overflow",
	}
	for in, msg := range want {
		_, h, _ := parse8(t, in)
		var got string
		if st := GetMessage(h, &got); st != code.OK {
			t.Fatalf("GetMessage status = %v", st)
		}
		if got != msg {
			t.Fatalf("GetMessage(%q) = %q, want %q", in, got, msg)
		}
		Destroy(h)
	}

	for _, e := range []*hexffi.Error{hexffi.NullPointer(), hexffi.InvalidUTF8()} {
		h := Issue(e)
		var got string
		if GetMessage(h, &got); got != e.Message() || got == "" {
			t.Fatalf("GetMessage = %q, want %q", got, e.Message())
		}
		Destroy(h)
	}
}

func TestGetCode_Idempotent(t *testing.T) {
	_, h, _ := parse8(t, "0x")
	defer mustDestroy(t, h)
	var a, b code.Code
	GetCode(h, &a)
	GetCode(h, &b)
	if a != b || a != code.InvalidFormat {
		t.Fatalf("GetCode twice = %v, %v", a, b)
	}
}

func TestGetBacktrace(t *testing.T) {
	_, h, _ := parse8(t, "g")
	defer mustDestroy(t, h)
	var bt *string
	if st := GetBacktrace(h, &bt); st != code.OK {
		t.Fatalf("status = %v", st)
	}
	if bt == nil || !strings.Contains(*bt, "hexparse.Parse") {
		t.Fatalf("backtrace = %v", bt)
	}

	h2 := Issue(hexffi.Overflow(hexffi.WithoutTrace()))
	defer Destroy(h2)
	bt = new(string)
	if st := GetBacktrace(h2, &bt); st != code.OK || bt != nil {
		t.Fatalf("no-trace backtrace = %v, %v", bt, st)
	}
}

func TestGetCause_IndependentHandles(t *testing.T) {
	root := hexffi.InvalidHexDigit('q')
	parent := Issue(hexffi.Wrap(hexffi.KindInvalidFormat, root))
	before := Live()

	var c1, c2 Handle
	if GetCause(parent, &c1) != code.OK || GetCause(parent, &c2) != code.OK {
		t.Fatal("GetCause failed")
	}
	if c1 == 0 || c2 == 0 || c1 == c2 {
		t.Fatalf("GetCause handles = %d, %d; want two distinct live handles", c1, c2)
	}
	if Live() != before+2 {
		t.Fatalf("Live() = %d, want %d", Live(), before+2)
	}

	// Destroying the parent first must leave cause handles usable.
	Destroy(parent)
	var msg string
	if GetMessage(c1, &msg) != code.OK || msg != "Invalid hex digit: q" {
		t.Fatalf("cause message = %q", msg)
	}
	var grand Handle
	if GetCause(c1, &grand) != code.OK || grand != 0 {
		t.Fatalf("root cause must have no cause, got handle %d", grand)
	}
	Destroy(c1)
	var c code.Code
	if GetCode(c2, &c) != code.OK || c != code.InvalidHexDigit {
		t.Fatalf("second cause handle code = %v", c)
	}
	Destroy(c2)
	if Live() != before-1 {
		t.Fatalf("Live() = %d, want %d", Live(), before-1)
	}
}

func TestGetCause_None(t *testing.T) {
	_, h, _ := parse8(t, "0x")
	defer mustDestroy(t, h)
	cause := Handle(99)
	if GetCause(h, &cause) != code.OK || cause != 0 {
		t.Fatalf("GetCause = %d, want null handle", cause)
	}
}

func TestDestroy_DoesNotDisturbOtherHandles(t *testing.T) {
	_, a, _ := parse8(t, "1g")
	_, b, _ := parse8(t, "256")
	Destroy(a)
	var c code.Code
	if GetCode(b, &c) != code.OK || c != code.Overflow {
		t.Fatalf("surviving handle code = %v", c)
	}
	Destroy(b)
	Destroy(0)
}

func TestAccessors_NullArguments(t *testing.T) {
	_, h, _ := parse8(t, "g")
	defer mustDestroy(t, h)
	before := Live()

	if GetCode(h, nil) != code.NullPointer {
		t.Fatal("GetCode(nil out)")
	}
	if GetMessage(h, nil) != code.NullPointer {
		t.Fatal("GetMessage(nil out)")
	}
	if GetCause(h, nil) != code.NullPointer {
		t.Fatal("GetCause(nil out)")
	}
	if GetBacktrace(h, nil) != code.NullPointer {
		t.Fatal("GetBacktrace(nil out)")
	}
	if GetChar(h, nil) != code.NullPointer {
		t.Fatal("GetChar(nil out)")
	}
	var c code.Code
	if GetCode(0, &c) != code.NullPointer {
		t.Fatal("GetCode(null handle)")
	}
	if Live() != before {
		t.Fatal("accessors must not issue handles on misuse")
	}
}

func TestDestroyedHandle_Panics(t *testing.T) {
	_, h, _ := parse8(t, "g")
	Destroy(h)
	defer func() {
		if recover() == nil {
			t.Fatal("using a destroyed handle must panic")
		}
	}()
	var c code.Code
	GetCode(h, &c)
}

func TestIssueAndLookup(t *testing.T) {
	if Issue(nil) != 0 || Lookup(0) != nil {
		t.Fatal("nil error must map to the null handle")
	}
	e := hexffi.Overflow()
	h := Issue(e)
	defer Destroy(h)
	if Lookup(h) != e {
		t.Fatal("Lookup must return the issued value")
	}
}
