// Package config handles run options and logger setup.
package config

import (
	"errors"
	"fmt"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Defaults for the run options.
const (
	DefaultScale   = 16
	minLoadAddress = 0x050
	maxLoadAddress = 0xFFE
)

// Run holds the options of the run command.
type Run struct {
	ROM         string
	ClockRate   int     // instructions per second
	Scale       float64 // window pixels per display pixel
	LoadAddress uint16
	BeepFile    string // optional mp3 played instead of the built-in tone
	Quirks      chip8.Quirks

	Debug bool
	Quiet bool
	Trace bool
}

// DefaultRun returns the run options used when no flags are given.
func DefaultRun() Run {
	return Run{
		ClockRate:   chip8.DefaultClockRate,
		Scale:       DefaultScale,
		LoadAddress: chip8.DefaultLoadAddress,
	}
}

// Validate checks the options for values the emulator can not run with.
func (r Run) Validate() error {
	if r.ROM == "" {
		return errors.New("no rom given")
	}
	if r.ClockRate <= 0 {
		return fmt.Errorf("invalid clock rate %d", r.ClockRate)
	}
	if r.Scale <= 0 {
		return fmt.Errorf("invalid scale %g", r.Scale)
	}
	if r.LoadAddress < minLoadAddress || r.LoadAddress > maxLoadAddress {
		return fmt.Errorf("load address 0x%03X outside of 0x%03X-0x%03X", r.LoadAddress, minLoadAddress, maxLoadAddress)
	}
	return nil
}

// VMOptions converts the run options to VM options.
func (r Run) VMOptions(logger *log.Logger) []chip8.Option {
	return []chip8.Option{
		chip8.WithLoadAddress(r.LoadAddress),
		chip8.WithQuirks(r.Quirks),
		chip8.WithLogger(logger),
		chip8.WithTrace(r.Trace),
	}
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
