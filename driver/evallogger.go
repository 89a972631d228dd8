package driver

import (
	"log"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/sim/hooking"
)

// EvalLogger is a hook that logs every evaluation of the core.
type EvalLogger struct {
	logger *log.Logger
}

// NewEvalLogger returns an EvalLogger writing to logger.
func NewEvalLogger(logger *log.Logger) *EvalLogger {
	return &EvalLogger{logger: logger}
}

// Func logs the signals right after an evaluation.
func (h *EvalLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosAfterEval {
		return
	}

	snap, ok := ctx.Item.(core.Snapshot)
	if !ok {
		return
	}

	phase := ""
	if seq, ok := ctx.Domain.(*ClockSequencer); ok {
		phase = seq.Phase().String()
	}

	h.logger.Printf("%6d %-5s %s", ctx.Time, phase, snap)
}
