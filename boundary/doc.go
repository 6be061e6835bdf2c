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

// Package boundary is the Go-typed form of the hexffi C ABI.
//
// Every function here mirrors one exported C function in package cabi, with
// C pointers replaced by Go pointers (nil standing for NULL) and error
// values replaced by opaque Handles. Package cabi only converts types and
// allocates C strings; all validation order, ownership and status logic
// lives here, where it can be tested without cgo.
//
// # Status codes
//
// Every function returns a code.Code. code.OK (0) means success; any other
// value is the code of the failure. The status is authoritative: the error
// handle is best-effort detail.
//
// # Ownership
//
// A Handle is issued when a failing entry point writes it to the caller's
// out-parameter; from that instant the caller owns it and must release it
// exactly once with Destroy. GetCause issues a new, independently owned
// Handle on every call. Causes are immutable values shared between the
// parent and every cause handle, so destroying the parent never invalidates
// a cause handle and no value is ever released twice.
//
// # Caller obligations
//
// The following are undefined behaviour and are not guarded beyond what
// the registry needs to stay consistent (the Go implementation panics,
// which aborts a C host):
//
//   - passing a Handle after it was destroyed, or one never issued;
//   - destroying the same Handle twice;
//   - using one Handle from several threads without external
//     synchronisation (distinct handles on distinct threads are fine).
package boundary
