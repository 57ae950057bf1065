package cli

import (
	"errors"
	"image/color"
	"testing"

	"gochip8/pkg/config"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts config.Options)
	}{
		{
			name: "defaults",
			args: []string{"pong.ch8"},
			check: func(t *testing.T, opts config.Options) {
				t.Helper()
				assert.Equal(t, "pong.ch8", opts.ROM)
				assert.Equal(t, config.DefaultTPS, opts.TPS)
				assert.Equal(t, config.DefaultScale, opts.Scale)
				assert.Equal(t, config.DefaultSteps, opts.Steps)
				assert.False(t, opts.Debug)
				assert.False(t, opts.Clip)
				assert.Equal(t, uint64(0), opts.Seed)
			},
		},
		{
			name: "behaviour flags",
			args: []string{"-debug", "-trace", "-clip", "-seed", "42", "game.ch8"},
			check: func(t *testing.T, opts config.Options) {
				t.Helper()
				assert.True(t, opts.Debug)
				assert.True(t, opts.Trace)
				assert.True(t, opts.Clip)
				assert.Equal(t, uint64(42), opts.Seed)
				assert.Equal(t, "game.ch8", opts.ROM)
			},
		},
		{
			name: "timing and output",
			args: []string{"-q", "-tps", "500", "-scale", "8", "-steps", "100", "-screenshot", "out.png", "rom"},
			check: func(t *testing.T, opts config.Options) {
				t.Helper()
				assert.True(t, opts.Quiet)
				assert.Equal(t, 500, opts.TPS)
				assert.Equal(t, 8, opts.Scale)
				assert.Equal(t, 100, opts.Steps)
				assert.Equal(t, "out.png", opts.Screenshot)
			},
		},
		{
			name: "colours",
			args: []string{"-fg", "#33ff66", "-bg", "102030", "rom"},
			check: func(t *testing.T, opts config.Options) {
				t.Helper()
				assert.Equal(t, color.RGBA{R: 0x33, G: 0xFF, B: 0x66, A: 0xFF}, opts.Foreground)
				assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, opts.Background)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFlags("gochip8", tt.args)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing rom", nil, "no ROM file specified"},
		{"only flags", []string{"-debug"}, "no ROM file specified"},
		{"unknown flag", []string{"-nope", "rom"}, "nope"},
		{"flag after rom", []string{"rom", "-debug"}, "unexpected argument -debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("gochip8", tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero tps", []string{"-tps", "0", "rom"}, "invalid -tps"},
		{"zero scale", []string{"-scale", "0", "rom"}, "invalid -scale"},
		{"negative steps", []string{"-steps", "-1", "rom"}, "invalid -steps"},
		{"bad fg", []string{"-fg", "red", "rom"}, "invalid -fg"},
		{"bad bg", []string{"-bg", "12345g", "rom"}, "invalid -bg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("gochip8", tt.args)
			assert.ErrorContains(t, err, tt.msg)

			var usageErr *UsageError
			assert.False(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}, c)

	_, err = ParseColor("#FFF")
	assert.Error(t, err)
}
