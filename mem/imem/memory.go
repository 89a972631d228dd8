// Package imem holds the instruction memory that feeds the core and the loader
// that fills it from a text source.
package imem

import "fmt"

// Capacity is the number of words an instruction memory can hold.
const Capacity = 256

// Memory is an ordered, read-only sequence of 32-bit instruction words.
type Memory struct {
	words    []uint32
	warnings []Warning
	source   string
}

// New creates a memory holding a copy of words. It panics if words exceeds
// Capacity.
func New(words ...uint32) *Memory {
	if len(words) > Capacity {
		panic(fmt.Sprintf("%d words exceed instruction memory capacity %d",
			len(words), Capacity))
	}

	m := &Memory{words: make([]uint32, len(words))}
	copy(m.words, words)

	return m
}

// Len returns the number of loaded words.
func (m *Memory) Len() int {
	return len(m.words)
}

// Empty tells if no word is loaded.
func (m *Memory) Empty() bool {
	return len(m.words) == 0
}

// At returns the word at address addr.
func (m *Memory) At(addr int) uint32 {
	return m.words[addr]
}

// Address maps a cycle number onto a word address. The program repeats when it
// is shorter than the run. Address panics on an empty memory.
func (m *Memory) Address(cycle uint64) int {
	if m.Empty() {
		panic("fetching from an empty instruction memory")
	}

	return int(cycle % uint64(len(m.words)))
}

// Fetch returns the word presented to the core in the given cycle.
func (m *Memory) Fetch(cycle uint64) uint32 {
	return m.words[m.Address(cycle)]
}

// Words returns a copy of the loaded words.
func (m *Memory) Words() []uint32 {
	out := make([]uint32, len(m.words))
	copy(out, m.words)

	return out
}

// Warnings returns the non-fatal conditions met while loading.
func (m *Memory) Warnings() []Warning {
	return m.warnings
}

// Source names where the memory was loaded from.
func (m *Memory) Source() string {
	return m.source
}
