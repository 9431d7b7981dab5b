// Package process stops the headless browser the snapshot exporter
// launches, together with the renderer and GPU helpers it forks.
package process

import "errors"

// ErrInvalidPID is returned for a PID that cannot name a process tree.
var ErrInvalidPID = errors.New("invalid pid")
