//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop the server and cancel a running build or export.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
