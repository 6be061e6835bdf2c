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

// ErrorView is a plain, serializable snapshot of one error and its causes.
//
// It is what the CLI prints and what tests compare against; wire formats
// (gRPC, HTTP) use google.rpc.Status built by package adapter instead.
type ErrorView struct {
	// Code is the numeric boundary code.
	Code uint32 `json:"code"`

	// Name is the canonical code name, e.g. "invalid_hex_digit".
	Name string `json:"name"`

	// Reason is the dotted reason, e.g. "hexffi.parse.hex_digit".
	Reason string `json:"reason,omitempty"`

	// Message is the error's own message, without its causes.
	Message string `json:"message"`

	// HTTPStatus and GRPCCode are the resolved transport projections.
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`

	// Trace is the rendered trace, empty when none was captured.
	Trace string `json:"trace,omitempty"`

	// Causes lists the cause chain, nearest cause first.
	Causes []ErrorView `json:"causes,omitempty"`
}
