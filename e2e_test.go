package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/log"

	"gochip8/pkg/config"
	"gochip8/pkg/cpu"
)

func writeROM(t *testing.T, code []byte) config.Options {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(path, code, 0o644); err != nil {
		t.Fatalf("Failed to write ROM: %v", err)
	}
	opts := config.Defaults()
	opts.ROM = path
	return opts
}

func TestRunBinaryAdd(t *testing.T) {
	// LD V0, $05; LD V1, $07; ADD V0, V1; JP $206
	opts := writeROM(t, []byte{0x60, 0x05, 0x61, 0x07, 0x80, 0x14, 0x12, 0x06})
	opts.Steps = 10
	opts.Quiet = true

	var out bytes.Buffer
	if err := runBinary(context.Background(), log.NewTestLogger(t), opts, &out); err != nil {
		t.Fatalf("runBinary failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"run complete (test)", "PC=$206", "cycles=10", "V0=$0C", "V1=$07", "VF=$00"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "█") {
		t.Errorf("quiet run should not print the display:\n%s", got)
	}
}

func TestRunBinaryDrawAndScreenshot(t *testing.T) {
	// LD V0, $00; LD F, V0; DRW V0, V0, 5; JP $206
	opts := writeROM(t, []byte{0x60, 0x00, 0xF0, 0x29, 0xD0, 0x05, 0x12, 0x06})
	opts.Steps = 4
	opts.Scale = 2
	opts.Screenshot = filepath.Join(t.TempDir(), "shot.png")

	var out bytes.Buffer
	if err := runBinary(context.Background(), log.NewTestLogger(t), opts, &out); err != nil {
		t.Fatalf("runBinary failed: %v", err)
	}
	// glyph 0 is F0 90 90 90 F0, two rows per character cell
	lines := strings.Split(out.String(), "\r\n")
	var preview []string
	for _, l := range lines {
		if strings.ContainsAny(l, "█▀▄") {
			preview = append(preview, l)
		}
	}
	if len(preview) != 3 {
		t.Fatalf("expected 3 preview lines with lit cells, got %d:\n%s", len(preview), out.String())
	}
	for i, want := range []string{"█▀▀█", "█  █", "▀▀▀▀"} {
		if !strings.HasPrefix(preview[i], want) {
			t.Errorf("preview line %d = %q, want prefix %q", i, preview[i], want)
		}
	}

	f, err := os.Open(opts.Screenshot)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("screenshot is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("screenshot size = %dx%d, want 128x64", b.Dx(), b.Dy())
	}
}

func TestRunBinaryStepError(t *testing.T) {
	// RET with nothing on the call stack
	opts := writeROM(t, []byte{0x00, 0xEE})

	err := runBinary(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
	if !errors.Is(err, cpu.ErrCallStackEmpty) {
		t.Fatalf("expected ErrCallStackEmpty, got %v", err)
	}
}

func TestRunBinaryMissingROM(t *testing.T) {
	opts := config.Defaults()
	opts.ROM = filepath.Join(t.TempDir(), "missing.ch8")

	var out bytes.Buffer
	if err := runBinary(context.Background(), log.NewTestLogger(t), opts, &out); err == nil {
		t.Fatal("expected an error for a missing ROM")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunBinaryCancelled(t *testing.T) {
	opts := writeROM(t, []byte{0x12, 0x00})
	opts.Steps = 0
	opts.Quiet = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := runBinary(ctx, log.NewTestLogger(t), opts, &out); err != nil {
		t.Fatalf("cancelled run should not fail: %v", err)
	}
	if !strings.Contains(out.String(), "cycles=0") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}
