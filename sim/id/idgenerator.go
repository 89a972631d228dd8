// Package id generates identifiers for simulation runs and the records they
// produce.
package id

import (
	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

// NewUniqueIDGenerator returns a generator whose IDs are globally unique.
func NewUniqueIDGenerator() IDGenerator {
	return uniqueIDGenerator{}
}

type uniqueIDGenerator struct{}

func (uniqueIDGenerator) Generate() string {
	return xid.New().String()
}

var runIDs = NewUniqueIDGenerator()

// RunID returns a fresh identifier for a simulation run.
func RunID() string {
	return "run_" + runIDs.Generate()
}
