package driver

import "github.com/pkg/errors"

// Errors returned while building or running a driver.
var (
	ErrNoCore       = errors.New("no core under test")
	ErrNoSink       = errors.New("no trace sink")
	ErrNoMemory     = errors.New("no instruction memory")
	ErrNotReset     = errors.New("core has not been reset")
	ErrAlreadyReset = errors.New("core has already been reset")
)
