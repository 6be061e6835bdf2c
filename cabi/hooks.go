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

// Helpers that drive the exports the way a C caller would. Test files
// cannot use cgo, so they live here; nothing else calls them.

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// callArgs selects which pointer arguments are passed as NULL.
type callArgs struct {
	nullText   bool
	nullResult bool
	nullErr    bool
}

func callParseHex(text string, a callArgs) (st uint32, v uint8, h uintptr) {
	var cs *C.char
	if !a.nullText {
		cs = C.CString(text)
		defer C.free(unsafe.Pointer(cs))
	}
	var cv C.uint8_t
	var ch C.uintptr_t
	var pv *C.uint8_t
	var ph *C.uintptr_t
	if !a.nullResult {
		pv = &cv
	}
	if !a.nullErr {
		ph = &ch
	}
	st = uint32(hexffi_parse_hex(cs, pv, ph))
	return st, uint8(cv), uintptr(ch)
}

func callParseHex64(text string) (st uint32, v uint64, h uintptr) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	var cv C.uint64_t
	var ch C.uintptr_t
	st = uint32(hexffi_parse_hex64(cs, &cv, &ch))
	return st, uint64(cv), uintptr(ch)
}

func callGetCode(h uintptr) (st, c uint32) {
	var out C.uint32_t
	st = uint32(hexffi_err_get_code(C.uintptr_t(h), &out))
	return st, uint32(out)
}

func callGetChar(h uintptr) (st, ch uint32) {
	var out C.uint32_t
	st = uint32(hexffi_err_get_char(C.uintptr_t(h), &out))
	return st, uint32(out)
}

// callGetMessage copies the returned buffer and frees it with
// hexffi_string_destroy. isNull reports a NULL buffer.
func callGetMessage(h uintptr) (st uint32, msg string, isNull bool) {
	var out *C.char
	st = uint32(hexffi_err_get_message(C.uintptr_t(h), &out))
	if out == nil {
		return st, "", true
	}
	defer hexffi_string_destroy(out)
	return st, C.GoString(out), false
}

func callGetBacktrace(h uintptr) (st uint32, bt string, isNull bool) {
	var out *C.char
	st = uint32(hexffi_err_get_backtrace(C.uintptr_t(h), &out))
	if out == nil {
		return st, "", true
	}
	defer hexffi_string_destroy(out)
	return st, C.GoString(out), false
}

func callGetCause(h uintptr) (st uint32, cause uintptr) {
	var out C.uintptr_t
	st = uint32(hexffi_err_get_cause(C.uintptr_t(h), &out))
	return st, uintptr(out)
}

func callGetMessageNullOut(h uintptr) uint32 {
	return uint32(hexffi_err_get_message(C.uintptr_t(h), nil))
}

func callDestroy(h uintptr) {
	hexffi_err_destroy(C.uintptr_t(h))
}

func callLiveHandles() uint64 {
	return uint64(hexffi_live_handles())
}
