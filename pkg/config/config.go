// Package config handles emulator settings shared by the host binaries.
package config

import (
	"image/color"

	"gochip8/pkg/cpu"

	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultTPS steps the machine at the rate its timers count down.
	DefaultTPS   = 60
	DefaultScale = 16
	DefaultSteps = 600
)

// Options holds the settings of one emulator run.
type Options struct {
	ROM string

	Debug bool
	Quiet bool
	Trace bool
	Clip  bool

	// Seed makes RND reproducible. Zero picks a random seed.
	Seed uint64

	TPS        int
	Scale      int
	Steps      int
	Screenshot string

	Foreground color.RGBA
	Background color.RGBA
}

// Defaults returns the options used when no flags are given.
func Defaults() Options {
	return Options{
		TPS:        DefaultTPS,
		Scale:      DefaultScale,
		Steps:      DefaultSteps,
		Foreground: cpu.DefaultPalette.Foreground,
		Background: cpu.DefaultPalette.Background,
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

// Palette returns the configured display colours.
func (o Options) Palette() cpu.Palette {
	return cpu.Palette{Background: o.Background, Foreground: o.Foreground}
}

// CPUOptions translates the settings into interpreter options.
func (o Options) CPUOptions(logger *log.Logger) []cpu.Option {
	opts := []cpu.Option{
		cpu.WithLogger(logger),
		cpu.WithTrace(o.Trace),
	}
	if o.Clip {
		opts = append(opts, cpu.WithDrawMode(cpu.DrawClip))
	}
	if o.Seed != 0 {
		opts = append(opts, cpu.WithSeed(o.Seed))
	}
	return opts
}
