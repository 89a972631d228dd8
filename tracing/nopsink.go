package tracing

import "github.com/sarchlab/coretb/sim/timing"

// NopSink checks the sink protocol and counts samples without storing them.
type NopSink struct {
	sinkState
	times []timing.VTime
	keep  bool
}

// NewNopSink creates a NopSink.
func NewNopSink() *NopSink {
	return &NopSink{}
}

// KeepTimes makes the sink remember the time of every sample.
func (s *NopSink) KeepTimes() *NopSink {
	s.keep = true
	return s
}

// Open binds the source. The path is ignored.
func (s *NopSink) Open(_ string, src SignalSource) error {
	if err := s.canOpen(src); err != nil {
		return err
	}

	s.markOpen(src)

	return nil
}

// Sample reads the source and drops the values.
func (s *NopSink) Sample(t timing.VTime) error {
	if _, err := s.snapshot(t); err != nil {
		return err
	}

	if s.keep {
		s.times = append(s.times, t)
	}

	return nil
}

// Close marks the sink closed.
func (s *NopSink) Close() error {
	s.close()
	return nil
}

// Times returns the sample times kept since KeepTimes was called.
func (s *NopSink) Times() []timing.VTime {
	return s.times
}

// Closed tells if Close has been called.
func (s *NopSink) Closed() bool {
	return s.closed
}
