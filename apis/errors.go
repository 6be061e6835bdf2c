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

package apis

// CodedError is an error classified by a numeric boundary code.
//
// The code is the same integer a C caller receives as a status, so
// adapters can branch on it without knowing the concrete error type. Zero
// is reserved for success and must never be returned here.
type CodedError interface {
	error

	// ErrorCode returns the non-zero boundary code.
	ErrorCode() uint32
}

// ReasonedError refines the code with a dotted reason, e.g.
// "hexffi.parse.overflow". The result may be empty.
type ReasonedError interface {
	error

	ErrorReason() string
}

// TracedError exposes the diagnostic trace captured when the error was
// built, rendered as text. The result is empty when no trace was captured.
type TracedError interface {
	error

	ErrorTrace() string
}
