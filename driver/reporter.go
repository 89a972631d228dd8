package driver

import (
	"fmt"
	"io"

	"github.com/sarchlab/coretb/sim/hooking"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// StatusReporter prints a status line every Interval cycles.
type StatusReporter struct {
	w        io.Writer
	interval uint64
	color    bool
	lines    uint64
}

// NewStatusReporter creates a reporter writing to w. An interval of 0 never
// prints.
func NewStatusReporter(w io.Writer, interval uint64) *StatusReporter {
	return &StatusReporter{w: w, interval: interval}
}

// WithColor highlights cycles that raised the illegal flag.
func (r *StatusReporter) WithColor(on bool) *StatusReporter {
	r.color = on
	return r
}

// Lines returns the number of status lines written.
func (r *StatusReporter) Lines() uint64 {
	return r.lines
}

// Func prints the status of a cycle when it falls on the interval.
func (r *StatusReporter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosCycleEnd || r.interval == 0 {
		return
	}

	rec, ok := ctx.Item.(CycleRecord)
	if !ok || rec.Cycle%r.interval != 0 {
		return
	}

	line := FormatStatus(rec)
	if r.color && rec.Illegal {
		line = colorRed + line + colorReset
	}

	fmt.Fprintln(r.w, line)
	r.lines++
}

// FormatStatus formats the status line of a cycle.
func FormatStatus(rec CycleRecord) string {
	illegal := 0
	if rec.Illegal {
		illegal = 1
	}

	return fmt.Sprintf("[Cycle %4d] PC=%3d Instr=0x%08x Status=0x%08x Illegal=%d",
		rec.Cycle, rec.PC, rec.Instruction, rec.Status, illegal)
}
