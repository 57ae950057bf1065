// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gochip8/pkg/config"
)

// ParseFlags parses args (without the program name) into emulator options.
// The single positional argument is the ROM path.
func ParseFlags(name string, args []string) (config.Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := config.Defaults()
	var fg, bg string
	readOptionFlags(flags, &opts, &fg, &bg)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{name: name, flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return opts, &UsageError{name: name, flags: flags, msg: "no ROM file specified"}
	}
	if len(rest) > 1 {
		return opts, &UsageError{
			name:  name,
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s after ROM file, options must come before the ROM file", rest[1]),
		}
	}
	opts.ROM = rest[0]

	if err := normalizeOptions(&opts, fg, bg); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	name  string
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s [options] <rom file>\n\n", e.name)
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

func readOptionFlags(flags *flag.FlagSet, opts *config.Options, fg, bg *string) {
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction (needs -debug)")
	flags.BoolVar(&opts.Clip, "clip", false, "clip sprites at the display edge instead of wrapping them")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 picks a random seed")
	flags.IntVar(&opts.TPS, "tps", config.DefaultTPS, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", config.DefaultScale, "pixel scale of the window and screenshots")
	flags.IntVar(&opts.Steps, "steps", config.DefaultSteps, "number of instructions the headless runner executes")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "write a PNG of the display to this file when done")
	flags.StringVar(fg, "fg", "", "foreground colour as RRGGBB (default 00e430)")
	flags.StringVar(bg, "bg", "", "background colour as RRGGBB (default 000000)")
}

func normalizeOptions(opts *config.Options, fg, bg string) error {
	if opts.TPS < 1 {
		return fmt.Errorf("invalid -tps %d: must be at least 1", opts.TPS)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid -scale %d: must be at least 1", opts.Scale)
	}
	if opts.Steps < 0 {
		return fmt.Errorf("invalid -steps %d: must not be negative", opts.Steps)
	}

	if fg != "" {
		c, err := ParseColor(fg)
		if err != nil {
			return fmt.Errorf("invalid -fg: %w", err)
		}
		opts.Foreground = c
	}
	if bg != "" {
		c, err := ParseColor(bg)
		if err != nil {
			return fmt.Errorf("invalid -bg: %w", err)
		}
		opts.Background = c
	}
	return nil
}

// ParseColor parses an opaque RRGGBB colour, optionally prefixed by '#'.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not in RRGGBB form", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q is not in RRGGBB form", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
