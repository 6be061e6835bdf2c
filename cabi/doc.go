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

// Package cabi exports the hexffi boundary as C functions.
//
// Link it into a c-shared or c-archive build (see cmd/libhexffi) and use
// include/hexffi.h from C. Each export converts C types and forwards to
// package boundary, which owns validation, status and handle semantics.
// Strings handed out by the accessors are allocated with malloc and must be
// released with hexffi_string_destroy; error handles are uintptr_t values
// released with hexffi_err_destroy.
package cabi
