package tracing

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/sim/timing"
)

type csvRow struct {
	time timing.VTime
	snap core.Snapshot
}

// CSVSink writes one line per sample into a CSV file.
type CSVSink struct {
	sinkState

	file *os.File
	w    *bufio.Writer

	rows       []csvRow
	bufferSize int
	err        error
}

// NewCSVSink creates an unopened CSVSink.
func NewCSVSink() *CSVSink {
	return &CSVSink{bufferSize: 1000}
}

// Open creates the CSV file and writes the header. An existing file is
// overwritten.
func (s *CSVSink) Open(path string, src SignalSource) error {
	if err := s.canOpen(src); err != nil {
		return err
	}

	file, err := createFile(path)
	if err != nil {
		return err
	}

	s.file = file
	s.w = bufio.NewWriter(file)

	fmt.Fprintf(s.w, "Time, Clock, ResetN, Instruction, Status, Illegal\n")

	atexit.Register(func() { s.flush() })

	s.markOpen(src)

	return nil
}

// Sample buffers one line.
func (s *CSVSink) Sample(t timing.VTime) error {
	snap, err := s.snapshot(t)
	if err != nil {
		return err
	}

	s.rows = append(s.rows, csvRow{time: t, snap: snap})
	if len(s.rows) >= s.bufferSize {
		s.flush()
	}

	return s.err
}

func (s *CSVSink) flush() {
	if s.w == nil {
		return
	}

	for _, r := range s.rows {
		_, err := fmt.Fprintf(s.w, "%d, %d, %d, 0x%08x, 0x%08x, %d\n",
			r.time,
			r.snap.Clock,
			r.snap.ResetN,
			r.snap.Instruction,
			r.snap.Status,
			r.snap.Illegal,
		)
		if err != nil && s.err == nil {
			s.err = errors.Wrap(err, "writing csv trace")
		}
	}

	s.rows = nil

	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = errors.Wrap(err, "writing csv trace")
	}
}

// Close flushes the buffered lines and closes the file.
func (s *CSVSink) Close() error {
	if !s.close() {
		return nil
	}

	s.flush()
	s.w = nil

	if err := s.file.Close(); err != nil && s.err == nil {
		s.err = errors.Wrap(err, "closing csv trace")
	}

	return s.err
}
