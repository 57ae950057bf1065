package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"

	"gochip8/pkg/cli"
	"gochip8/pkg/config"
	"gochip8/pkg/cpu"
	"gochip8/pkg/grid"
	"gochip8/pkg/host"
	"gochip8/pkg/utils"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// keypad maps keypad indices 0-F to host keys.
var keypad = [cpu.NumKeys]ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
	ebiten.Key8, ebiten.Key9, ebiten.KeyA, ebiten.KeyB,
	ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
}

type Game struct {
	vm      *cpu.CPU
	logger  *log.Logger
	palette cpu.Palette
	scale   int
	romDir  string

	displayImg *ebiten.Image // reused 64×32 canvas
	overlay    bool
	fullscreen bool

	// input hooks, replaced in tests
	isKeyPressed     func(ebiten.Key) bool
	isKeyJustPressed func(ebiten.Key) bool
	setFullscreen    func(bool)
}

func newGame(vm *cpu.CPU, logger *log.Logger, opts config.Options, romDir string) *Game {
	return &Game{
		vm:               vm,
		logger:           logger,
		palette:          opts.Palette(),
		scale:            opts.Scale,
		romDir:           romDir,
		isKeyPressed:     ebiten.IsKeyPressed,
		isKeyJustPressed: inpututil.IsKeyJustPressed,
		setFullscreen:    ebiten.SetFullscreen,
	}
}

func (g *Game) Update() error {
	if g.isKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.isKeyJustPressed(ebiten.KeyF3) {
		g.overlay = !g.overlay
	}
	if g.isKeyJustPressed(ebiten.KeyF11) {
		g.fullscreen = !g.fullscreen
		g.setFullscreen(g.fullscreen)
	}
	if g.isKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}

	var keys [cpu.NumKeys]bool
	for i, k := range keypad {
		keys[i] = g.isKeyPressed(k)
	}
	g.vm.SetKeys(keys)

	return g.vm.Step()
}

func (g *Game) screenshot() {
	path, err := utils.NextScreenshotPath(g.romDir)
	if err == nil {
		err = g.vm.SaveScreenshot(path, g.scale, g.palette)
	}
	if err != nil {
		g.logger.Error("Saving screenshot failed", log.Err(err))
		return
	}
	g.logger.Info("Saved screenshot", log.String("path", path))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.displayImg == nil {
		g.displayImg = ebiten.NewImage(grid.Width, grid.Height)
		g.displayImg.WritePixels(g.vm.FramebufferRGBA(g.palette))
	}
	if g.vm.DisplayDirty() {
		g.displayImg.WritePixels(g.vm.FramebufferRGBA(g.palette))
		g.vm.ClearDirty()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.displayImg, op)

	if g.overlay {
		ebitenutil.DebugPrint(screen, g.overlayText())
	}
}

func (g *Game) overlayText() string {
	text := fmt.Sprintf("FPS %0.1f TPS %0.1f\nPC $%03X I $%03X depth %d\nDT %d ST %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.vm.PC, g.vm.I, g.vm.Depth(), g.vm.DT, g.vm.ST)
	if ret, ok := g.vm.ReturnAddress(); ok {
		text += fmt.Sprintf("\nret $%03X", ret)
	}
	return text
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return grid.Width * g.scale, grid.Height * g.scale
}

func main() {
	opts, err := cli.ParseFlags("chip8-desktop", os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		}
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(logger *log.Logger, opts config.Options) error {
	fullPath, romDir, err := utils.GetPathInfo(opts.ROM)
	if err != nil {
		return err
	}

	host.PrintBanner(logger, "chip8-desktop", opts.Quiet, version, commit, date)

	vm, err := cpu.LoadFile(fullPath, opts.CPUOptions(logger)...)
	if err != nil {
		return err
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(grid.Width*opts.Scale, grid.Height*opts.Scale)
	ebiten.SetWindowTitle("CHIP-8 - " + utils.RomName(fullPath))
	ebiten.SetTPS(opts.TPS)

	game := newGame(vm, logger, opts, romDir)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Debug("Window closed", log.Int("cycles", int(vm.Cycles())))
	return nil
}
