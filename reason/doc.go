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

// Package reason defines a dotted, machine-friendly refinement of a hexffi
// code.
//
// Where a code answers "what kind of failure is this?" with a number that
// survives the C boundary, a reason names the place in the pipeline where it
// happened:
//
//   - "hexffi.input.null_pointer"
//   - "hexffi.input.utf8"
//   - "hexffi.parse.overflow"
//
// Reasons are used by the transport adapters (gRPC ErrorInfo.Reason, HTTP
// views) and by mapper rules that match on a reason prefix. The zero value
// ("") means "no reason".
package reason
