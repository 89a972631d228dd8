package driver

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/sim/hooking"
)

// Hook positions of the ClockSequencer. Item is the core.Snapshot of the
// inputs before the evaluation, and of every signal after it.
var (
	HookPosBeforeEval = &hooking.HookPos{Name: "BeforeEval"}
	HookPosAfterEval  = &hooking.HookPos{Name: "AfterEval"}
)

// A ClockSequencer generates the reset pulse and the clock edges of a run.
//
// Every input change is followed by exactly one evaluation, every evaluation
// by exactly one trace sample, and every sample by one clock advance.
type ClockSequencer struct {
	hooking.HookableBase

	ctx *SimulationContext
}

// NewClockSequencer creates a sequencer that drives ctx.
func NewClockSequencer(ctx *SimulationContext) *ClockSequencer {
	return &ClockSequencer{ctx: ctx}
}

// Phase returns the phase of the run.
func (s *ClockSequencer) Phase() Phase {
	return s.ctx.Phase
}

// Reset holds rst_n low for Config.ResetCycles clock cycles, then releases it
// with the clock low and evaluates once more. It moves the run from IDLE to
// RUN and can only be called once.
func (s *ClockSequencer) Reset() error {
	if s.ctx.Phase != PhaseIdle {
		return ErrAlreadyReset
	}

	s.ctx.Phase = PhaseReset

	err := s.driveAll(
		pin{core.ResetN, 0},
		pin{core.Clock, 0},
		pin{core.Instruction, 0},
	)
	if err != nil {
		return err
	}

	for i := 0; i < s.ctx.Config.ResetCycles; i++ {
		if err := s.toggle(); err != nil {
			return errors.WithMessagef(err, "reset cycle %d", i)
		}
	}

	err = s.driveAll(
		pin{core.ResetN, 1},
		pin{core.Clock, 0},
	)
	if err != nil {
		return err
	}

	if err := s.step(); err != nil {
		return errors.WithMessage(err, "reset release")
	}

	s.ctx.Phase = PhaseRun

	return nil
}

// Cycle runs one full clock cycle: a rising edge then a falling edge.
func (s *ClockSequencer) Cycle() error {
	if s.ctx.Phase != PhaseRun {
		return ErrNotReset
	}

	return s.toggle()
}

func (s *ClockSequencer) toggle() error {
	if err := s.ctx.drive(core.Clock, 1); err != nil {
		return err
	}

	if err := s.step(); err != nil {
		return errors.WithMessage(err, "rising edge")
	}

	if err := s.ctx.drive(core.Clock, 0); err != nil {
		return err
	}

	if err := s.step(); err != nil {
		return errors.WithMessage(err, "falling edge")
	}

	return nil
}

// step evaluates the core, samples the trace and advances time.
func (s *ClockSequencer) step() error {
	now := s.ctx.Now()

	if s.NumHooks() > 0 {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosBeforeEval,
			Time:   now,
			Item:   s.ctx.Inputs(),
		})
	}

	if err := s.ctx.Core.Eval(); err != nil {
		return errors.Wrapf(err, "evaluating at %d", now)
	}

	s.ctx.evals++

	if err := s.ctx.Sink.Sample(now); err != nil {
		return errors.Wrapf(err, "sampling at %d", now)
	}

	s.ctx.samples++

	if s.NumHooks() > 0 {
		snap, err := s.ctx.Snapshot()
		if err != nil {
			return err
		}

		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosAfterEval,
			Time:   now,
			Item:   snap,
		})
	}

	s.ctx.clock.Advance()

	return nil
}

type pin struct {
	signal core.Signal
	value  uint64
}

// driveAll drives several inputs without evaluating in between.
func (s *ClockSequencer) driveAll(pins ...pin) error {
	for _, p := range pins {
		if err := s.ctx.drive(p.signal, p.value); err != nil {
			return err
		}
	}

	return nil
}
