package tracing

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/sim/timing"
)

// VCDSink writes a value change dump that waveform viewers can open. One time
// unit is written as 1ns.
type VCDSink struct {
	sinkState

	file    *os.File
	w       *bufio.Writer
	signals []core.Signal
	prev    core.Snapshot
	err     error
}

// NewVCDSink creates an unopened VCDSink.
func NewVCDSink() *VCDSink {
	return &VCDSink{signals: core.Signals()}
}

// Open creates the dump file and writes the declarations.
func (s *VCDSink) Open(path string, src SignalSource) error {
	if err := s.canOpen(src); err != nil {
		return err
	}

	file, err := createFile(path)
	if err != nil {
		return err
	}

	s.file = file
	s.w = bufio.NewWriter(file)
	s.markOpen(src)
	s.writeHeader()

	atexit.Register(func() {
		if s.w != nil {
			s.w.Flush()
		}
	})

	return s.err
}

func vcdID(i int) string {
	return string(rune('!' + i))
}

func (s *VCDSink) writeHeader() {
	s.printf("$version coretb $end\n")
	s.printf("$timescale 1ns $end\n")
	s.printf("$scope module core $end\n")

	for i, sig := range s.signals {
		w := core.Width(sig)
		if w == 1 {
			s.printf("$var wire 1 %s %s $end\n", vcdID(i), sig)
			continue
		}

		s.printf("$var wire %d %s %s [%d:0] $end\n", w, vcdID(i), sig, w-1)
	}

	s.printf("$upscope $end\n")
	s.printf("$enddefinitions $end\n")
}

// Sample writes the signals that changed since the previous sample. The first
// sample dumps every signal.
func (s *VCDSink) Sample(t timing.VTime) error {
	first := !s.sampled

	snap, err := s.snapshot(t)
	if err != nil {
		return err
	}

	s.printf("#%d\n", t)

	if first {
		s.printf("$dumpvars\n")
	}

	for i, sig := range s.signals {
		v := snap.Value(sig)
		if !first && v == s.prev.Value(sig) {
			continue
		}

		s.writeValue(i, sig, v)
	}

	if first {
		s.printf("$end\n")
	}

	s.prev = snap

	return s.err
}

func (s *VCDSink) writeValue(i int, sig core.Signal, v uint64) {
	if core.Width(sig) == 1 {
		s.printf("%d%s\n", v, vcdID(i))
		return
	}

	s.printf("b%s %s\n", strconv.FormatUint(v, 2), vcdID(i))
}

func (s *VCDSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}

	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.err = errors.Wrap(err, "writing vcd trace")
	}
}

// Close flushes and closes the dump file.
func (s *VCDSink) Close() error {
	if !s.close() {
		return nil
	}

	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = errors.Wrap(err, "writing vcd trace")
	}

	s.w = nil

	if err := s.file.Close(); err != nil && s.err == nil {
		s.err = errors.Wrap(err, "closing vcd trace")
	}

	return s.err
}
