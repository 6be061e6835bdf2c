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

package boundary

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/hexffi"
)

// Handle is an opaque reference to a live *hexffi.Error. It travels to C as
// uintptr_t. Zero is the null handle and is never issued.
type Handle uintptr

// registry maps issued handles to their errors. It is the only state shared
// between boundary calls. Handles are never reused within a process, so a
// stale handle cannot silently alias a newer error.
type registry struct {
	values sync.Map // Handle -> *hexffi.Error
	next   atomic.Uintptr
	live   atomic.Int64
}

var handles = &registry{}

func (r *registry) issue(e *hexffi.Error) Handle {
	h := Handle(r.next.Add(1))
	if h == 0 {
		panic("boundary: ran out of handles")
	}
	r.values.Store(h, e)
	r.live.Add(1)
	return h
}

func (r *registry) lookup(h Handle) *hexffi.Error {
	v, ok := r.values.Load(h)
	if !ok {
		panic("boundary: misuse of an invalid or destroyed Handle")
	}
	return v.(*hexffi.Error)
}

func (r *registry) release(h Handle) {
	if _, ok := r.values.LoadAndDelete(h); !ok {
		panic("boundary: misuse of an invalid or destroyed Handle")
	}
	r.live.Add(-1)
}

// Live returns the number of handles issued and not yet destroyed. It is a
// leak diagnostic for hosts and tests.
func Live() int {
	return int(handles.live.Load())
}

// Issue registers e and returns a new owned Handle. It is exported for Go
// hosts that build errors themselves (for example by chaining with
// hexffi.Wrap) and want to hand them across the boundary. A nil e yields
// the null handle.
func Issue(e *hexffi.Error) Handle {
	if e == nil {
		return 0
	}
	return handles.issue(e)
}

// Lookup returns the error behind a live handle, or nil for the null
// handle. It panics on a destroyed or unknown handle.
func Lookup(h Handle) *hexffi.Error {
	if h == 0 {
		return nil
	}
	return handles.lookup(h)
}
