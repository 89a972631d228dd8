package driver

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/mem/imem"
	"github.com/sarchlab/coretb/sim/timing"
	"github.com/sarchlab/coretb/tracing"
)

// Phase is the state of the clock sequencer.
type Phase int

// Phases of a run. A run only moves forward.
const (
	PhaseIdle Phase = iota
	PhaseReset
	PhaseRun
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseReset:
		return "RESET"
	case PhaseRun:
		return "RUN"
	default:
		return "UNKNOWN"
	}
}

// SimulationContext is the state of one run. It is owned by a Driver and
// shared by pointer with its ClockSequencer.
type SimulationContext struct {
	Core   core.CoreUnderTest
	Sink   tracing.Sink
	Memory *imem.Memory
	Config Config

	// Clock tells the simulated time. Only the ClockSequencer advances it.
	Clock timing.TimeTeller

	// Cycle is the number of completed RUN cycles.
	Cycle uint64
	Phase Phase

	clock *timing.Clock

	// inputs mirrors the values last driven on the input ports.
	inputs  core.Snapshot
	evals   uint64
	samples uint64
}

func newSimulationContext(
	c core.CoreUnderTest,
	sink tracing.Sink,
	memory *imem.Memory,
	cfg Config,
) *SimulationContext {
	clock := timing.NewClock(cfg.HalfPeriod)

	return &SimulationContext{
		Core:   c,
		Sink:   sink,
		Memory: memory,
		Config: cfg,
		Clock:  clock,
		clock:  clock,
	}
}

// Now returns the current simulated time.
func (c *SimulationContext) Now() timing.VTime {
	return c.clock.Now()
}

// Inputs returns the values last driven on the input ports. Output fields are
// zero.
func (c *SimulationContext) Inputs() core.Snapshot {
	return c.inputs
}

// Evals returns the number of evaluations so far.
func (c *SimulationContext) Evals() uint64 {
	return c.evals
}

// Samples returns the number of trace samples so far.
func (c *SimulationContext) Samples() uint64 {
	return c.samples
}

// drive sets an input port and mirrors its value.
func (c *SimulationContext) drive(s core.Signal, v uint64) error {
	if err := c.Core.SetInput(s, v); err != nil {
		return errors.Wrapf(err, "driving %s", s)
	}

	switch s {
	case core.Clock:
		c.inputs.Clock = uint8(v)
	case core.ResetN:
		c.inputs.ResetN = uint8(v)
	case core.Instruction:
		c.inputs.Instruction = uint32(v)
	}

	return nil
}

// Snapshot returns the driven inputs together with the core's outputs.
func (c *SimulationContext) Snapshot() (core.Snapshot, error) {
	snap := c.inputs

	status, err := c.Core.Output(core.Status)
	if err != nil {
		return core.Snapshot{}, errors.Wrap(err, "reading status")
	}

	illegal, err := c.Core.Output(core.Illegal)
	if err != nil {
		return core.Snapshot{}, errors.Wrap(err, "reading illegal")
	}

	snap.Status = uint32(status)
	snap.Illegal = uint8(illegal & 1)

	return snap, nil
}
