// Package driver runs a synchronous core against an instruction memory: it
// resets the core, feeds it one instruction per clock cycle and records every
// evaluation into a trace sink.
//
// A run is single threaded. Every input change is followed by an evaluation
// before anything else happens, and the only way a run ends is the MaxCycles
// watchdog (or, when enabled, the core's halt output).
package driver

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/mem/imem"
	"github.com/sarchlab/coretb/sim/hooking"
	"github.com/sarchlab/coretb/sim/timing"
	"github.com/sarchlab/coretb/tracing"
)

// HookPosCycleEnd triggers after every RUN cycle. Item is a CycleRecord.
var HookPosCycleEnd = &hooking.HookPos{Name: "CycleEnd"}

// A CycleRecord describes one completed RUN cycle.
type CycleRecord struct {
	Cycle       uint64
	PC          int
	Instruction uint32
	Status      uint32
	Illegal     bool
}

// A Report summarizes a run.
type Report struct {
	RunID          string
	CyclesExecuted uint64
	Instructions   int
	IllegalCycles  uint64
	FinalStatus    uint32
	SimTime        timing.VTime
	// ClockCycles counts every full clock period of the run, reset included.
	ClockCycles uint64
	Evals       uint64
	Samples     uint64
	Halted      bool
}

// Driver runs one simulation. A Driver can only be run once.
type Driver struct {
	hooking.HookableBase

	ctx       *SimulationContext
	seq       *ClockSequencer
	tracePath string
	runID     string
	out       io.Writer
}

// Context returns the state of the run.
func (d *Driver) Context() *SimulationContext {
	return d.ctx
}

// Sequencer returns the clock sequencer, to which evaluation hooks can be
// attached.
func (d *Driver) Sequencer() *ClockSequencer {
	return d.seq
}

// Run opens the trace, resets the core and runs until the watchdog bound. The
// trace is closed exactly once when Run returns.
func (d *Driver) Run() (report Report, err error) {
	ctx := d.ctx

	if ctx.Phase != PhaseIdle {
		return Report{}, ErrAlreadyReset
	}

	if err := ctx.Sink.Open(d.tracePath, ctx); err != nil {
		return Report{}, errors.WithMessage(err, "opening trace")
	}

	defer func() {
		cerr := ctx.Sink.Close()
		if err == nil && cerr != nil {
			err = errors.WithMessage(cerr, "closing trace")
		}
	}()

	d.annotate("Run ID", d.runID)
	d.annotate("Instruction Source", ctx.Memory.Source())
	d.annotate("Instructions", strconv.Itoa(ctx.Memory.Len()))

	fmt.Fprintf(d.out, "Starting core simulation\n")
	fmt.Fprintf(d.out, "Total instructions loaded: %d\n\n", ctx.Memory.Len())

	if err := d.seq.Reset(); err != nil {
		return Report{}, err
	}

	report = Report{
		RunID:        d.runID,
		Instructions: ctx.Memory.Len(),
	}

	for ctx.Cycle < ctx.Config.MaxCycles && !ctx.Memory.Empty() {
		rec, err := d.runCycle()
		if err != nil {
			return report, errors.WithMessagef(err, "cycle %d", ctx.Cycle)
		}

		if rec.Illegal {
			report.IllegalCycles++
		}

		report.FinalStatus = rec.Status
		ctx.Cycle++

		if ctx.Config.StopOnHalt {
			halted, err := d.haltRequested()
			if err != nil {
				return report, err
			}

			if halted {
				report.Halted = true
				break
			}
		}
	}

	fmt.Fprintf(d.out, "\nSimulation complete after %d cycles\n", ctx.Cycle)

	report.CyclesExecuted = ctx.Cycle
	report.SimTime = ctx.Now()
	report.ClockCycles = ctx.clock.Cycles(report.SimTime)
	report.Evals = ctx.Evals()
	report.Samples = ctx.Samples()

	d.annotate("Cycles Executed", strconv.FormatUint(ctx.Cycle, 10))
	d.annotate("Halted", strconv.FormatBool(report.Halted))

	return report, nil
}

func (d *Driver) runCycle() (CycleRecord, error) {
	ctx := d.ctx

	pc := ctx.Memory.Address(ctx.Cycle)
	instr := ctx.Memory.At(pc)

	if err := ctx.drive(core.Instruction, uint64(instr)); err != nil {
		return CycleRecord{}, err
	}

	if err := d.seq.Cycle(); err != nil {
		return CycleRecord{}, err
	}

	snap, err := ctx.Snapshot()
	if err != nil {
		return CycleRecord{}, err
	}

	rec := CycleRecord{
		Cycle:       ctx.Cycle,
		PC:          pc,
		Instruction: instr,
		Status:      snap.Status,
		Illegal:     snap.Illegal == 1,
	}

	d.InvokeHook(hooking.HookCtx{
		Domain: d,
		Pos:    HookPosCycleEnd,
		Time:   ctx.Now(),
		Item:   rec,
	})

	return rec, nil
}

func (d *Driver) haltRequested() (bool, error) {
	v, err := d.ctx.Core.Output(core.Halt)
	if err != nil {
		return false, errors.Wrap(err, "polling halt")
	}

	return v == 1, nil
}

func (d *Driver) annotate(property, value string) {
	if a, ok := d.ctx.Sink.(tracing.Annotator); ok {
		a.Annotate(property, value)
	}
}

// Builder can build drivers.
type Builder struct {
	core      core.CoreUnderTest
	sink      tracing.Sink
	memory    *imem.Memory
	config    Config
	tracePath string
	runID     string
	out       io.Writer
}

// MakeBuilder creates a builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		config: DefaultConfig(),
		out:    io.Discard,
	}
}

// WithCore sets the core to drive.
func (b Builder) WithCore(c core.CoreUnderTest) Builder {
	b.core = c
	return b
}

// WithSink sets the trace sink.
func (b Builder) WithSink(s tracing.Sink) Builder {
	b.sink = s
	return b
}

// WithMemory sets the instruction memory.
func (b Builder) WithMemory(m *imem.Memory) Builder {
	b.memory = m
	return b
}

// WithConfig sets the run configuration.
func (b Builder) WithConfig(c Config) Builder {
	b.config = c
	return b
}

// WithTracePath sets where the sink is opened.
func (b Builder) WithTracePath(p string) Builder {
	b.tracePath = p
	return b
}

// WithRunID sets the identifier recorded with the trace.
func (b Builder) WithRunID(id string) Builder {
	b.runID = id
	return b
}

// WithReportWriter sets where the run banner and summary are written. Status
// lines are written by a StatusReporter hook.
func (b Builder) WithReportWriter(w io.Writer) Builder {
	b.out = w
	return b
}

// Build creates the driver.
func (b Builder) Build() (*Driver, error) {
	switch {
	case b.core == nil:
		return nil, ErrNoCore
	case b.sink == nil:
		return nil, ErrNoSink
	case b.memory == nil:
		return nil, ErrNoMemory
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	if b.memory.Len() > b.config.MemoryCapacity {
		return nil, errors.Errorf("%d instructions exceed memory capacity %d",
			b.memory.Len(), b.config.MemoryCapacity)
	}

	ctx := newSimulationContext(b.core, b.sink, b.memory, b.config)

	return &Driver{
		ctx:       ctx,
		seq:       NewClockSequencer(ctx),
		tracePath: b.tracePath,
		runID:     b.runID,
		out:       b.out,
	}, nil
}
