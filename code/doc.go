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

// Package code defines the closed, numeric error code enumeration shared by
// both sides of the hexffi C boundary.
//
// A code is the status every boundary function returns. Callers on the far
// side of the boundary cannot pattern-match Go error values, so they branch
// on these integers instead. The values are:
//
//   - 0: OK (success, never carried by an error);
//   - 1: NullPointer;
//   - 2: InvalidFormat;
//   - 3: InvalidHexDigit;
//   - 4: Overflow;
//   - 5: InvalidUTF8.
//
// IMPORTANT: the numeric values are part of the ABI. They are stable for the
// lifetime of the library and must never be renumbered or reused. New codes
// may only be appended.
//
// Every code also has a canonical lowercase, underscore-separated name
// ("null_pointer", "invalid_hex_digit", ...) used in logs, JSON and CLI
// flags. Parse accepts either the name or the decimal number.
package code
