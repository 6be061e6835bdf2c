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

// Package apis defines the small Go-level contracts shared by the hexffi
// adapters.
//
// Transport code (mapper, adapter, grpcx, httpx) targets these interfaces
// and view types rather than the concrete *hexffi.Error, so the same
// adapters work for any error that can report a numeric code, a reason and
// a trace. The package only holds interfaces and plain structs.
package apis
