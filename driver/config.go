package driver

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/coretb/mem/imem"
	"github.com/sarchlab/coretb/sim/timing"
)

// Config holds the fixed parameters of a run.
type Config struct {
	// ResetCycles is the number of full clock cycles with rst_n held low.
	ResetCycles int

	// MaxCycles is the watchdog bound on RUN cycles.
	MaxCycles uint64

	// ReportInterval is the number of cycles between two status lines. 0
	// disables the status lines.
	ReportInterval uint64

	// MemoryCapacity bounds the size of the instruction memory.
	MemoryCapacity int

	// HalfPeriod is the simulated time between two clock edges.
	HalfPeriod timing.VTime

	// StopOnHalt ends the run early once the core raises its halt output.
	StopOnHalt bool
}

// DefaultConfig returns the reference timing scheme: 5 reset cycles, 1000
// cycles, a status line every 10 cycles and 5 time units per edge.
func DefaultConfig() Config {
	return Config{
		ResetCycles:    5,
		MaxCycles:      1000,
		ReportInterval: 10,
		MemoryCapacity: imem.Capacity,
		HalfPeriod:     timing.HalfPeriod,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.ResetCycles < 0:
		return errors.Errorf("reset cycles %d is negative", c.ResetCycles)
	case c.MemoryCapacity <= 0 || c.MemoryCapacity > imem.Capacity:
		return errors.Errorf("memory capacity %d not in 1..%d",
			c.MemoryCapacity, imem.Capacity)
	case c.HalfPeriod == 0:
		return errors.New("half period cannot be 0")
	}

	return nil
}
