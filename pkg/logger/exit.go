// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

import "os"

// ExitWithError terminates the process with the given exit code. It is
// meant to be deferred first in main so that other deferred cleanups run
// before the process exits.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
