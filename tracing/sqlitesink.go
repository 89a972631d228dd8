package tracing

import (
	"github.com/sarchlab/coretb/datarecording"
	"github.com/sarchlab/coretb/sim/timing"
)

// SampleTable is the table that holds the signal samples.
const SampleTable = "signal_sample"

// sampleBatch is the number of buffered rows that triggers a write. A default
// 1000-cycle run fits in one batch.
const sampleBatch = 4096

// SignalSample is one row of the sample table.
type SignalSample struct {
	Time        uint64
	Clock       uint8
	ResetN      uint8
	Instruction uint32
	Status      uint32
	Illegal     uint8
}

// SQLiteSink stores samples in a SQLite database, together with an exec_info
// table describing the run.
type SQLiteSink struct {
	sinkState

	recorder datarecording.DataRecorder
	exec     *datarecording.ExecRecorder
}

// NewSQLiteSink creates an unopened SQLiteSink.
func NewSQLiteSink() *SQLiteSink {
	return &SQLiteSink{}
}

// Open creates the database. An existing file at path is replaced.
func (s *SQLiteSink) Open(path string, src SignalSource) error {
	if err := s.canOpen(src); err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return err
	}

	recorder, err := datarecording.New(path)
	if err != nil {
		return err
	}

	s.recorder = recorder.WithBatchSize(sampleBatch)
	s.recorder.CreateTable(SampleTable, SignalSample{})

	s.exec = datarecording.NewExecRecorder(s.recorder)
	s.exec.Start()

	s.markOpen(src)

	return nil
}

// Sample buffers one row.
func (s *SQLiteSink) Sample(t timing.VTime) error {
	snap, err := s.snapshot(t)
	if err != nil {
		return err
	}

	s.recorder.InsertData(SampleTable, SignalSample{
		Time:        t,
		Clock:       snap.Clock,
		ResetN:      snap.ResetN,
		Instruction: snap.Instruction,
		Status:      snap.Status,
		Illegal:     snap.Illegal,
	})

	return nil
}

// Annotate stores a run property in the exec_info table.
func (s *SQLiteSink) Annotate(property, value string) {
	if s.exec != nil {
		s.exec.Set(property, value)
	}
}

// Close writes the buffered rows and the run metadata.
func (s *SQLiteSink) Close() error {
	if !s.close() {
		return nil
	}

	s.exec.End()

	return s.recorder.Close()
}
