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

// Package hexffi defines the error object model that crosses the hexffi C
// boundary.
//
// An *Error is one of a closed set of kinds (NullPointer, InvalidFormat,
// InvalidHexDigit, Overflow, InvalidUTF8). Every kind embeds the same Common
// payload: an optional cause and an optional trace captured when the value
// was constructed. Errors are immutable: options run only inside the
// constructor, and no method mutates the receiver. A cause can only be a
// value that already existed when its parent was built, so cause chains are
// always finite and acyclic.
//
// The introspection methods (Code, Message, Trace, Source) are pure Go and
// never touch the boundary. Package boundary turns failures into opaque
// handles, and package cabi exports the C functions that read them.
//
// Typical use:
//
//	if len(s) == 0 {
//	    return 0, hexffi.InvalidFormat()
//	}
//
//	// explicit causal composition
//	return hexffi.Wrap(hexffi.KindInvalidFormat, inner)
package hexffi
