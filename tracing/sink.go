// Package tracing records the signals of a driven core at every point in
// simulated time.
//
// A Sink is opened once before the first evaluation, sampled after every
// evaluation and closed once at the end of the run. Sinks pull the signal
// values from a SignalSource when sampled.
package tracing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/sim/timing"
)

// A SignalSource provides the current value of every traced port.
type SignalSource interface {
	Snapshot() (core.Snapshot, error)
}

// A Sink is an append-only, time-ordered recording of signal samples.
type Sink interface {
	// Open creates the recording at path and binds the source that is read
	// on every Sample.
	Open(path string, src SignalSource) error

	// Sample records the current signal values at time t. Times must be
	// strictly increasing.
	Sample(t timing.VTime) error

	// Close finishes the recording. Closing twice is a no-op.
	Close() error
}

// An Annotator is a Sink that can store run metadata next to the samples.
type Annotator interface {
	Annotate(property, value string)
}

// Errors returned by sinks.
var (
	ErrNotOpen       = errors.New("trace sink is not open")
	ErrAlreadyOpen   = errors.New("trace sink is already open")
	ErrClosed        = errors.New("trace sink is closed")
	ErrTimeNotLater  = errors.New("sample time is not after the previous sample")
	ErrUnknownFormat = errors.New("unknown trace format")
)

// Format selects a sink implementation.
type Format string

// Supported formats.
const (
	FormatSQLite Format = "sqlite"
	FormatCSV    Format = "csv"
	FormatVCD    Format = "vcd"
	FormatNone   Format = "none"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatSQLite, FormatCSV, FormatVCD, FormatNone}
}

// ParseFormat converts a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Extension returns the file extension used by a format.
func (f Format) Extension() string {
	switch f {
	case FormatSQLite:
		return ".sqlite3"
	case FormatCSV:
		return ".csv"
	case FormatVCD:
		return ".vcd"
	default:
		return ""
	}
}

// NewSink creates an unopened sink of the given format.
func NewSink(f Format) (Sink, error) {
	switch f {
	case FormatSQLite:
		return NewSQLiteSink(), nil
	case FormatCSV:
		return NewCSVSink(), nil
	case FormatVCD:
		return NewVCDSink(), nil
	case FormatNone:
		return NewNopSink(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

// sinkState is the lifecycle and ordering bookkeeping shared by every sink.
type sinkState struct {
	src     SignalSource
	opened  bool
	closed  bool
	sampled bool
	last    timing.VTime
	count   uint64
}

// canOpen checks that the sink may be opened with src. It does not change
// the state, so a sink whose backend fails to open can be opened again.
func (s *sinkState) canOpen(src SignalSource) error {
	switch {
	case s.closed:
		return ErrClosed
	case s.opened:
		return ErrAlreadyOpen
	case src == nil:
		return errors.New("trace sink needs a signal source")
	}

	return nil
}

// markOpen binds src once the backend resources exist.
func (s *sinkState) markOpen(src SignalSource) {
	s.src = src
	s.opened = true
}

func (s *sinkState) snapshot(t timing.VTime) (core.Snapshot, error) {
	switch {
	case s.closed:
		return core.Snapshot{}, ErrClosed
	case !s.opened:
		return core.Snapshot{}, ErrNotOpen
	case s.sampled && t <= s.last:
		return core.Snapshot{}, errors.Wrapf(ErrTimeNotLater,
			"sample at %d after %d", t, s.last)
	}

	snap, err := s.src.Snapshot()
	if err != nil {
		return core.Snapshot{}, errors.Wrapf(err, "sampling at %d", t)
	}

	s.sampled = true
	s.last = t
	s.count++

	return snap, nil
}

// close reports whether the sink needs to release its resources.
func (s *sinkState) close() bool {
	if s.closed {
		return false
	}

	s.closed = true

	return s.opened
}

// Samples returns the number of samples recorded so far.
func (s *sinkState) Samples() uint64 {
	return s.count
}

func createFile(path string) (*os.File, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating trace %s", path)
	}

	return f, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating trace directory %s", dir)
	}

	return nil
}
