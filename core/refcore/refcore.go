// Package refcore provides a small reference core written in Go. It lets the
// driver run end to end without an external hardware-simulation engine.
//
// On every rising clock edge the core either clears its state (rst_n low) or
// latches the instruction word. The top byte of the word is the opcode:
//
//	0x00-0x3F  retired; status = retired<<8 | opcode
//	0x40-0xFE  illegal; status holds its previous value
//	0xFF       halt; status holds its previous value
package refcore

import (
	"github.com/sarchlab/coretb/core"
)

const (
	maxLegalOpcode = 0x3F
	haltOpcode     = 0xFF
)

// Core is the reference core.
type Core struct {
	clock       uint64
	resetN      uint64
	instruction uint64

	prevClock uint64
	retired   uint32
	status    uint32
	illegal   bool
	halted    bool

	evals uint64
}

// New creates a reference core with every port at 0.
func New() *Core {
	return &Core{}
}

// SetInput drives an input port.
func (c *Core) SetInput(name core.Signal, value uint64) error {
	if err := core.CheckInput(name, value); err != nil {
		return err
	}

	switch name {
	case core.Clock:
		c.clock = value
	case core.ResetN:
		c.resetN = value
	case core.Instruction:
		c.instruction = value
	}

	return nil
}

// Eval settles the outputs.
func (c *Core) Eval() error {
	c.evals++

	rising := c.prevClock == 0 && c.clock == 1
	c.prevClock = c.clock

	if !rising {
		return nil
	}

	if c.resetN == 0 {
		c.retired = 0
		c.status = 0
		c.illegal = false
		c.halted = false

		return nil
	}

	c.execute(uint32(c.instruction))

	return nil
}

func (c *Core) execute(word uint32) {
	opcode := word >> 24

	switch {
	case opcode == haltOpcode:
		c.illegal = false
		c.halted = true
	case opcode > maxLegalOpcode:
		c.illegal = true
	default:
		c.illegal = false
		c.retired++
		c.status = c.retired<<8 | opcode
	}
}

// Output reads an output port.
func (c *Core) Output(name core.Signal) (uint64, error) {
	switch name {
	case core.Status:
		return uint64(c.status), nil
	case core.Illegal:
		return boolToSignal(c.illegal), nil
	case core.Halt:
		return boolToSignal(c.halted), nil
	default:
		return 0, core.UnknownSignal(name)
	}
}

// Retired returns the number of instructions retired since the last reset.
func (c *Core) Retired() uint32 {
	return c.retired
}

// Evals returns how many times Eval has been called.
func (c *Core) Evals() uint64 {
	return c.evals
}

func boolToSignal(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
