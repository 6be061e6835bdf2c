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

package mapper

import (
	"net/http"

	"dirpx.dev/hexffi/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP maps every error code to an HTTP status. All hexffi failures
// are caused by the caller's input, so they land in 4xx.
var defaultHTTP = map[code.Code]int{
	code.NullPointer:     http.StatusBadRequest, // A required argument was not supplied.
	code.InvalidFormat:   http.StatusBadRequest, // Nothing to parse.
	code.InvalidHexDigit: http.StatusBadRequest, // Malformed digit.
	code.Overflow:        http.StatusBadRequest, // Value too large for the requested width.
	code.InvalidUTF8:     http.StatusBadRequest, // Undecodable text.
}

// defaultGRPC maps every error code to a canonical gRPC code.
var defaultGRPC = map[code.Code]codes.Code{
	code.NullPointer:     codes.InvalidArgument,
	code.InvalidFormat:   codes.InvalidArgument,
	code.InvalidHexDigit: codes.InvalidArgument,
	code.Overflow:        codes.OutOfRange, // Well-formed but outside the representable range.
	code.InvalidUTF8:     codes.InvalidArgument,
}
