package imem

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSourceUnavailable means the instruction source could not be opened.
	ErrSourceUnavailable = errors.New("instruction source unavailable")

	// ErrMalformedInstruction means a line is not a 32-bit hexadecimal word.
	ErrMalformedInstruction = errors.New("malformed instruction")
)

// WarningKind classifies the non-fatal conditions of a load.
type WarningKind int

// Kinds of warnings.
const (
	CapacityExceeded WarningKind = iota
	MalformedInstruction
	EmptyProgram
)

func (k WarningKind) String() string {
	switch k {
	case CapacityExceeded:
		return "CapacityExceeded"
	case MalformedInstruction:
		return "MalformedInstruction"
	case EmptyProgram:
		return "EmptyProgram"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// A Warning is a non-fatal condition met while loading. Line is 1-based and 0
// when the warning is not tied to a line.
type Warning struct {
	Kind WarningKind
	Line int
	Msg  string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("WARNING: %s", w.Msg)
	}

	return fmt.Sprintf("WARNING: line %d: %s", w.Line, w.Msg)
}
