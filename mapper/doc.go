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

// Package mapper resolves hexffi codes (dirpx.dev/hexffi/code) and optional
// reasons (dirpx.dev/hexffi/reason) into HTTP and gRPC statuses.
//
// Go hosts that expose the hex parser over a transport need the same
// failure to come out as, say, 400 / InvalidArgument everywhere. A Mapper is
// an immutable snapshot of those rules and is safe for concurrent use.
//
// # Resolution model
//
//  1. exact override for the code;
//  2. the most specific reason prefix registered for the code;
//  3. per-code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefixes match whole segments and "*" matches exactly one segment, so
// "hexffi.parse" matches "hexffi.parse.overflow" and "hexffi.*.overflow"
// does too, while "hexffi.pa" matches nothing.
//
// When several prefixes match, ties are broken in this order:
//
//  1. more segments win ("hexffi.parse.overflow" over "hexffi.parse");
//  2. at equal length, fewer "*" segments win ("hexffi.parse.overflow"
//     over "hexffi.*.overflow");
//  3. between identical patterns, the rule registered first wins.
//
// # Example
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.Overflow, "hexffi.parse", http.StatusUnprocessableEntity),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//	st := m.Status(code.Overflow, "hexffi.parse.overflow")
//	// st.HTTP == 422, st.GRPC == codes.OutOfRange
//
// Explain reports which tier produced each status. It is meant for humans
// and golden tests, not for parsing.
package mapper
