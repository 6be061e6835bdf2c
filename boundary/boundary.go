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
	"errors"
	"math/bits"

	"dirpx.dev/hexffi"
	"dirpx.dev/hexffi/code"
	"dirpx.dev/hexffi/hexparse"
)

// Unsigned is the set of result types Parse can write.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Parse is the hex parsing entry point.
//
// text holds the bytes of a NUL-terminated C string without the NUL; nil
// stands for a NULL pointer, while a non-nil empty slice is an empty
// string. result receives the value on success. errOut, which may be nil,
// receives a new Handle on failure.
//
// Validation order:
//  1. result must be non-nil (NullPointer), checked before text;
//  2. text must be non-nil (NullPointer);
//  3. text must be UTF-8 (InvalidUTF8);
//  4. the rest is hexparse.Parse at the bit width of T.
//
// On failure *result is left untouched.
func Parse[T Unsigned](text []byte, result *T, errOut *Handle) code.Code {
	if result == nil {
		return fail(hexffi.NullPointer(), errOut)
	}
	if text == nil {
		return fail(hexffi.NullPointer(), errOut)
	}
	v, err := hexparse.ParseBytes(text, bitSize[T]())
	if err != nil {
		return fail(asError(err), errOut)
	}
	*result = T(v)
	return code.OK
}

// fail is the single place where a failure becomes a status and, when the
// caller asked for one, a Handle. With a nil errOut the error is simply
// dropped: nothing was registered, so nothing leaks.
func fail(e *hexffi.Error, errOut *Handle) code.Code {
	c := e.Code()
	if errOut != nil {
		*errOut = handles.issue(e)
	}
	return c
}

func asError(err error) *hexffi.Error {
	var he *hexffi.Error
	if errors.As(err, &he) {
		return he
	}
	// hexparse only returns *hexffi.Error; keep the status meaningful anyway.
	return hexffi.InvalidFormat()
}

func bitSize[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// GetCode writes the code of h to out.
func GetCode(h Handle, out *code.Code) code.Code {
	e, st := borrow(h, out == nil)
	if st != code.OK {
		return st
	}
	*out = e.Code()
	return code.OK
}

// GetMessage writes the message of h (without causes) to out. The C layer
// copies it into a freshly allocated buffer owned by the caller.
func GetMessage(h Handle, out *string) code.Code {
	e, st := borrow(h, out == nil)
	if st != code.OK {
		return st
	}
	*out = e.Message()
	return code.OK
}

// GetChar writes the offending code point of an InvalidHexDigit error to
// out, or 0 for any other kind.
func GetChar(h Handle, out *uint32) code.Code {
	e, st := borrow(h, out == nil)
	if st != code.OK {
		return st
	}
	ch, _ := e.Char()
	*out = uint32(ch)
	return code.OK
}

// GetCause writes a new owned Handle to the cause of h, or 0 when there is
// none. Every call issues a distinct Handle that the caller must Destroy;
// the parent keeps its own reference to the cause.
func GetCause(h Handle, out *Handle) code.Code {
	e, st := borrow(h, out == nil)
	if st != code.OK {
		return st
	}
	*out = Issue(e.Source())
	return code.OK
}

// GetBacktrace writes the rendered trace of h to out, or nil when no trace
// was captured.
func GetBacktrace(h Handle, out **string) code.Code {
	e, st := borrow(h, out == nil)
	if st != code.OK {
		return st
	}
	tr := e.Trace()
	if tr == nil {
		*out = nil
		return code.OK
	}
	s := tr.String()
	*out = &s
	return code.OK
}

// Destroy releases h. The null handle is ignored. Destroying a handle
// twice is undefined behaviour.
func Destroy(h Handle) {
	if h == 0 {
		return
	}
	handles.release(h)
}

// borrow resolves h for an accessor. A nil out-parameter or the null handle
// is reported as NullPointer without issuing a new error handle.
func borrow(h Handle, outNil bool) (*hexffi.Error, code.Code) {
	if outNil || h == 0 {
		return nil, code.NullPointer
	}
	return handles.lookup(h), code.OK
}
