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

// Package adapter converts *hexffi.Error values into transport-neutral
// shapes: the plain apis.ErrorView and the google.rpc.Status message shared
// by grpcx and httpx.
//
// Every error in the cause chain becomes one errdetails.ErrorInfo (outermost
// first) in the Domain "hexffi". The captured trace, if any, travels as a
// single errdetails.DebugInfo. FromStatusProto reverses the ErrorInfo part;
// traces are never reconstructed.
package adapter
