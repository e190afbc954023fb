// Package config provides configuration for the chess engine tools.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Verbosity levels for diagnostic output on LogFile.
const (
	Silent   = 0 // nothing
	Outcomes = 1 // one line per committed move and game status changes
	Verbose  = 2 // also every rejected move with its cause
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	Game   *GameConfig
	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Outcomes,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for regular output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
// It is safe for concurrent use; lines are never interleaved.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	line := fmt.Sprintf(format+"\n", args...)
	c.logMu.Lock()
	defer c.logMu.Unlock()
	io.WriteString(c.LogFile, line) //nolint:errcheck // diagnostics are best effort
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Verbose {
		return invalid("verbosity %d not in [%d,%d]", c.Verbosity, Silent, Verbose)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
