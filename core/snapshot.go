package core

import "fmt"

// A Snapshot is the value of every traced port at one point in time.
type Snapshot struct {
	Clock       uint8
	ResetN      uint8
	Instruction uint32
	Status      uint32
	Illegal     uint8
}

// Value returns the value of a port in the snapshot.
func (s Snapshot) Value(sig Signal) uint64 {
	switch sig {
	case Clock:
		return uint64(s.Clock)
	case ResetN:
		return uint64(s.ResetN)
	case Instruction:
		return uint64(s.Instruction)
	case Status:
		return uint64(s.Status)
	case Illegal:
		return uint64(s.Illegal)
	default:
		return 0
	}
}

// Signals returns the traced ports in trace order.
func Signals() []Signal {
	return append(append([]Signal{}, Inputs...), Outputs...)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("clk=%d rst_n=%d instr=0x%08x status=0x%08x illegal=%d",
		s.Clock, s.ResetN, s.Instruction, s.Status, s.Illegal)
}
