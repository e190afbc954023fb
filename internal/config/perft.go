package config

import "runtime"

// MaxPerftDepth bounds perft requests; the tree grows about 30x per ply.
const MaxPerftDepth = 7

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the perft depth (0 = no perft run)
	Depth int

	// Workers is the number of goroutines splitting root moves
	// (0 = one per CPU)
	Workers int

	// Divide prints the count below each root move
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values; perft is off by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// WorkerCount returns the effective number of workers.
func (p *PerftConfig) WorkerCount() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return invalid("perft depth %d not in [0,%d]", p.Depth, MaxPerftDepth)
	}
	if p.Workers < 0 {
		return invalid("workers %d is negative", p.Workers)
	}
	return nil
}
