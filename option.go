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

// Option configures an Error while it is being constructed. Options never
// run on an existing value, which is what keeps Error immutable.
type Option func(*options)

type options struct {
	cause *Error
	trace bool
	depth int
}

// WithCause attaches cause as the direct predecessor of the new error.
// A nil cause is ignored.
func WithCause(cause *Error) Option {
	return func(o *options) {
		if cause != nil {
			o.cause = cause
		}
	}
}

// WithoutTrace skips stack capture.
func WithoutTrace() Option {
	return func(o *options) { o.trace = false }
}

// WithTraceDepth bounds the number of captured frames. n <= 0 restores the
// default (trace.DefaultDepth).
func WithTraceDepth(n int) Option {
	return func(o *options) {
		o.trace = true
		o.depth = n
	}
}
