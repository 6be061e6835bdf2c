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

// Package trace captures diagnostic call-stack snapshots for hexffi errors.
//
// A Trace is taken once, when an error value is constructed, and is never
// recomputed or mutated afterwards. Frames are resolved eagerly so the
// snapshot is self-contained text data: it holds no live references into
// the runtime and can be rendered for the far side of the C boundary at any
// later time.
package trace

import (
	"fmt"
	"runtime"
	"strings"
)

// DefaultDepth bounds the number of frames captured by Capture.
const DefaultDepth = 32

// Frame is one resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame as "function file:line".
func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Trace is an immutable snapshot of frames, most recent call first.
// The zero value is an empty trace.
type Trace struct {
	frames []Frame
}

// Capture records the stack of its caller. skip=0 starts at the function
// calling Capture, skip=1 at that function's caller, and so on.
func Capture(skip int) *Trace {
	return CaptureDepth(skip+1, DefaultDepth)
}

// CaptureDepth is Capture with an explicit frame bound. depth <= 0 means
// DefaultDepth.
func CaptureDepth(skip, depth int) *Trace {
	if depth <= 0 {
		depth = DefaultDepth
	}
	// +2 skips runtime.Callers and CaptureDepth itself.
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return &Trace{}
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return &Trace{frames: out}
}

// FromFrames builds a Trace from already resolved frames, e.g. frames
// received from a remote peer. The slice is copied.
func FromFrames(frames []Frame) *Trace {
	out := make([]Frame, len(frames))
	copy(out, frames)
	return &Trace{frames: out}
}

// Len returns the number of frames. A nil Trace has none.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.frames)
}

// Frames returns a copy of the captured frames.
func (t *Trace) Frames() []Frame {
	if t == nil || len(t.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// Entries renders each frame on its own, in the "function file:line" form.
func (t *Trace) Entries() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.frames))
	for i, f := range t.frames {
		out[i] = f.String()
	}
	return out
}

// String renders the trace the way the Go runtime prints goroutine stacks:
//
//	function
//		file:line
func (t *Trace) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for i, f := range t.frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&b, "%s\n\t%s:%d", f.Function, f.File, f.Line)
	}
	return b.String()
}
