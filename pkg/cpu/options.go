package cpu

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// DrawMode selects how sprites crossing the display edge are handled.
type DrawMode uint8

const (
	// DrawWrap wraps every sprite pixel around the opposite edge.
	DrawWrap DrawMode = iota
	// DrawClip drops sprite pixels beyond the right and bottom edge.
	DrawClip
)

func (m DrawMode) String() string {
	if m == DrawClip {
		return "clip"
	}
	return "wrap"
}

// Option configures a CPU at construction.
type Option func(*CPU)

// WithLogger sets the logger used for load, call and trace messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *CPU) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTrace enables a debug log line for every executed instruction.
func WithTrace(trace bool) Option {
	return func(c *CPU) {
		c.trace = trace
	}
}

// WithRand sets the random source used by RND.
func WithRand(rng *rand.Rand) Option {
	return func(c *CPU) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed makes RND reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithDrawMode sets the sprite edge policy.
func WithDrawMode(mode DrawMode) Option {
	return func(c *CPU) {
		c.drawMode = mode
	}
}

func defaultLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}
