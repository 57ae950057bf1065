//go:build !js

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

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

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags("gochip8", os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		}
		logger.Error(err.Error())
		os.Exit(1)
	}

	host.PrintBanner(logger, "gochip8", opts.Quiet, version, commit, date)

	if err := runBinary(ctx, logger, opts, os.Stdout); err != nil {
		logger.Error("Run failed", log.Err(err))
		os.Exit(1)
	}
}

// runBinary executes the ROM for opts.Steps instructions without a window
// and prints the final machine state to out.
func runBinary(ctx context.Context, logger *log.Logger, opts config.Options, out io.Writer) error {
	fullPath, _, err := utils.GetPathInfo(opts.ROM)
	if err != nil {
		return err
	}

	vm, err := cpu.LoadFile(fullPath, opts.CPUOptions(logger)...)
	if err != nil {
		return err
	}

	err = vm.Run(ctx, opts.Steps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if _, err := fmt.Fprint(out, summary(utils.RomName(fullPath), vm)); err != nil {
		return err
	}
	if !opts.Quiet {
		if _, err := io.WriteString(out, host.RenderHalfBlocks(vm.Display())); err != nil {
			return err
		}
	}

	if opts.Screenshot != "" {
		if err := vm.SaveScreenshot(opts.Screenshot, opts.Scale, opts.Palette()); err != nil {
			return err
		}
		logger.Info("Saved screenshot", log.String("path", opts.Screenshot))
	}
	return nil
}

func summary(name string, vm *cpu.CPU) string {
	var regs strings.Builder
	for i, v := range vm.V {
		if i > 0 {
			regs.WriteByte(' ')
		}
		fmt.Fprintf(&regs, "V%X=$%02X", i, v)
	}

	return fmt.Sprintf(
		"run complete (%s): PC=$%03X I=$%03X DT=%d ST=%d depth=%d cycles=%d\n%s\n",
		name,
		vm.PC,
		vm.I,
		vm.DT,
		vm.ST,
		vm.Depth(),
		vm.Cycles(),
		regs.String(),
	)
}
