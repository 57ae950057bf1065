package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"gochip8/pkg/cli"
	"gochip8/pkg/config"
	"gochip8/pkg/cpu"
	"gochip8/pkg/host"
	"gochip8/pkg/utils"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags("chip8-console", os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		}
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts config.Options) error {
	fullPath, _, err := utils.GetPathInfo(opts.ROM)
	if err != nil {
		return err
	}

	host.PrintBanner(logger, "chip8-console", opts.Quiet, version, commit, date)

	vm, err := cpu.LoadFile(fullPath, opts.CPUOptions(logger)...)
	if err != nil {
		return err
	}

	term := host.NewTerminal(os.Stdin)
	if !term.IsTerminal() {
		return errors.New("stdin is not a terminal")
	}
	if w, h, err := term.Size(); err == nil && (w < 64 || h < 16) {
		logger.Warn("Terminal smaller than 64x16, output will wrap",
			log.Int("width", w), log.Int("height", h))
	}
	if err := term.Start(); err != nil {
		return err
	}
	defer term.Stop()

	fmt.Print(host.ANSIClear + host.ANSIHideCursor)
	defer fmt.Print(host.ANSIShowCursor)

	ticker := time.NewTicker(host.Interval(opts.TPS))
	defer ticker.Stop()

	// hold a key press for a quarter second, long enough to bridge key repeat
	latch := host.NewLatch(opts.TPS / 4)
	return runLoop(ctx, vm, term.Keys(), ticker.C, latch, os.Stdout)
}

// runLoop steps vm on every tick and redraws out when the display changed.
// It returns nil when the user quits or the input closes.
func runLoop(ctx context.Context, vm *cpu.CPU, keys <-chan byte, ticks <-chan time.Time,
	latch *host.Latch, out io.Writer) error {

	for {
		select {
		case <-ctx.Done():
			return nil

		case b, ok := <-keys:
			if !ok || b == keyCtrlC || b == keyEscape {
				return nil
			}
			if k, ok := host.KeyForRune(rune(b)); ok {
				latch.Press(k)
			}

		case <-ticks:
			vm.SetKeys(latch.Tick())
			if err := vm.Step(); err != nil {
				return err
			}
			if vm.DisplayDirty() {
				if _, err := io.WriteString(out, host.ANSIHome+host.RenderHalfBlocks(vm.Display())); err != nil {
					return err
				}
				vm.ClearDirty()
			}
		}
	}
}
