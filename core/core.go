// Package core defines the signal-level contract between the simulation driver
// and the synchronous unit it drives.
//
// The driver owns the input ports (clock, reset and instruction) and the core
// owns the output ports (status, illegal and, optionally, halt). Outputs are
// only meaningful right after an Eval call.
package core

import (
	"github.com/pkg/errors"
)

// Signal names a port of the core.
type Signal string

// Ports of the core.
const (
	Clock       Signal = "clk"
	ResetN      Signal = "rst_n"
	Instruction Signal = "instruction"
	Status      Signal = "status_out"
	Illegal     Signal = "illegal"
	Halt        Signal = "halt"
)

// Inputs lists the ports driven by the driver, in trace order.
var Inputs = []Signal{Clock, ResetN, Instruction}

// Outputs lists the ports that every core must drive, in trace order.
var Outputs = []Signal{Status, Illegal}

// ErrUnknownSignal is returned when a core does not have the requested port.
var ErrUnknownSignal = errors.New("unknown signal")

// A CoreUnderTest is a synchronous unit that can be driven signal by signal.
type CoreUnderTest interface {
	// SetInput drives an input port. The new value is not visible on the
	// outputs until Eval is called.
	SetInput(name Signal, value uint64) error

	// Eval lets the core settle its outputs for the current inputs. It
	// returns once the outputs are stable.
	Eval() error

	// Output reads an output port.
	Output(name Signal) (uint64, error)
}

// Width returns the number of bits of a port.
func Width(s Signal) int {
	switch s {
	case Instruction, Status:
		return 32
	default:
		return 1
	}
}

// IsInput tells if the driver owns the port.
func IsInput(s Signal) bool {
	return s == Clock || s == ResetN || s == Instruction
}

// UnknownSignal builds the error returned for a port the core does not have.
func UnknownSignal(s Signal) error {
	return errors.Wrapf(ErrUnknownSignal, "%q", string(s))
}

// CheckInput verifies that value fits in the width of an input port.
func CheckInput(s Signal, value uint64) error {
	if !IsInput(s) {
		return UnknownSignal(s)
	}

	if w := Width(s); w < 64 && value>>uint(w) != 0 {
		return errors.Errorf("value 0x%x does not fit %d-bit port %s", value, w, s)
	}

	return nil
}
