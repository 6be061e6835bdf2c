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

package cabi

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"dirpx.dev/hexffi/boundary"
	"dirpx.dev/hexffi/code"
)

//export hexffi_parse_hex
func hexffi_parse_hex(s *C.char, result *C.uint8_t, err *C.uintptr_t) C.uint32_t {
	return status(boundary.Parse(goBytes(s), (*uint8)(unsafe.Pointer(result)), handleOut(err)))
}

//export hexffi_parse_hex16
func hexffi_parse_hex16(s *C.char, result *C.uint16_t, err *C.uintptr_t) C.uint32_t {
	return status(boundary.Parse(goBytes(s), (*uint16)(unsafe.Pointer(result)), handleOut(err)))
}

//export hexffi_parse_hex32
func hexffi_parse_hex32(s *C.char, result *C.uint32_t, err *C.uintptr_t) C.uint32_t {
	return status(boundary.Parse(goBytes(s), (*uint32)(unsafe.Pointer(result)), handleOut(err)))
}

//export hexffi_parse_hex64
func hexffi_parse_hex64(s *C.char, result *C.uint64_t, err *C.uintptr_t) C.uint32_t {
	return status(boundary.Parse(goBytes(s), (*uint64)(unsafe.Pointer(result)), handleOut(err)))
}

//export hexffi_err_get_code
func hexffi_err_get_code(err C.uintptr_t, out *C.uint32_t) C.uint32_t {
	return status(boundary.GetCode(boundary.Handle(err), (*code.Code)(unsafe.Pointer(out))))
}

//export hexffi_err_get_message
func hexffi_err_get_message(err C.uintptr_t, out **C.char) C.uint32_t {
	var msg string
	var dst *string
	if out != nil {
		dst = &msg
	}
	st := boundary.GetMessage(boundary.Handle(err), dst)
	if st == code.OK {
		*out = C.CString(msg)
	}
	return status(st)
}

//export hexffi_err_get_char
func hexffi_err_get_char(err C.uintptr_t, out *C.uint32_t) C.uint32_t {
	return status(boundary.GetChar(boundary.Handle(err), (*uint32)(unsafe.Pointer(out))))
}

//export hexffi_err_get_cause
func hexffi_err_get_cause(err C.uintptr_t, out *C.uintptr_t) C.uint32_t {
	return status(boundary.GetCause(boundary.Handle(err), handleOut(out)))
}

//export hexffi_err_get_backtrace
func hexffi_err_get_backtrace(err C.uintptr_t, out **C.char) C.uint32_t {
	var bt *string
	var dst **string
	if out != nil {
		dst = &bt
	}
	st := boundary.GetBacktrace(boundary.Handle(err), dst)
	if st == code.OK {
		if bt == nil {
			*out = nil
		} else {
			*out = C.CString(*bt)
		}
	}
	return status(st)
}

//export hexffi_err_destroy
func hexffi_err_destroy(err C.uintptr_t) {
	boundary.Destroy(boundary.Handle(err))
}

//export hexffi_string_destroy
func hexffi_string_destroy(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export hexffi_live_handles
func hexffi_live_handles() C.uint64_t {
	return C.uint64_t(boundary.Live())
}

// goBytes copies a NUL-terminated C string. NULL maps to nil and "" to a
// non-nil empty slice, which is how boundary tells the two apart.
func goBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	n := C.strlen(s)
	if n == 0 {
		return []byte{}
	}
	b := make([]byte, n)
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(s)), n))
	return b
}

func handleOut(p *C.uintptr_t) *boundary.Handle {
	return (*boundary.Handle)(unsafe.Pointer(p))
}

func status(c code.Code) C.uint32_t {
	return C.uint32_t(c)
}
