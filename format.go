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

package hexffi

import (
	"fmt"
	"io"
	"strconv"
)

// Format implements fmt.Formatter.
//
//	%s, %v  Error()
//	%q      quoted Error()
//	%+v     multi-line:
//	          code=<name> msg="<message>"
//	          cause: <cause formatted with %+v>
//	          stack:
//	            function file:line
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*hexffi.Error=%s)", verb, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "code=%s msg=%q", e.Code(), e.Message())
	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}
	if e.trace.Len() > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, line := range e.trace.Entries() {
			_, _ = fmt.Fprintf(w, "\n  %s", line)
		}
	}
}
