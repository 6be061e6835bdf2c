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

// Command hexparse drives the hexffi boundary from the command line. It
// parses each argument the way a C caller would and walks the returned error
// handles: code, message, character, causes and backtrace.
package main

import (
	"errors"
	"fmt"
	"os"
)

var (
	Version   = "0.1.0-dev"
	CommitSHA = "unknown"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.status)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(64)
	}
}

// exitError carries the boundary status of the first failed input as the
// process exit code.
type exitError struct {
	status int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.status) }
