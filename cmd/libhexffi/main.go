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

// Command libhexffi builds the hexffi C library:
//
//	go build -buildmode=c-shared -o libhexffi.so ./cmd/libhexffi
//	go build -buildmode=c-archive -o libhexffi.a ./cmd/libhexffi
//
// The exported symbols come from package cabi; include/hexffi.h declares
// them.
package main

import "C"

import _ "dirpx.dev/hexffi/cabi"

func main() {}
