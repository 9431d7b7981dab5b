//go:build windows

package main

import "os"

// shutdownSignals stop the server and cancel a running build or export.
// SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
