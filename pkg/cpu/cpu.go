// Package cpu implements the CHIP-8 interpreter: register file, timers,
// display, keypad and the fetch-decode-execute step.
package cpu

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gochip8/pkg/grid"
	"gochip8/pkg/memory"
	"gochip8/pkg/opcode"
	"gochip8/pkg/stack"

	"github.com/retroenv/retrogolib/log"
)

const (
	NumRegs = 16
	NumKeys = 16

	// RegF is the flag register written by arithmetic, shift and draw instructions.
	RegF = 0xF

	pixelOn = 0xFF
)

// CPU is a CHIP-8 machine. The registers are exported for hosts and tests;
// everything else is reached through methods.
type CPU struct {
	V  [NumRegs]uint8
	I  uint16
	PC uint16

	DT uint8
	ST uint8

	Memory *memory.Memory

	stack   stack.Stack
	display [grid.Cells]uint8
	keys    [NumKeys]bool
	dirty   bool
	cycles  uint64

	rng      *rand.Rand
	logger   *log.Logger
	trace    bool
	drawMode DrawMode
}

// NewCPU creates an interpreter with rom loaded at the program start address.
func NewCPU(rom []byte, opts ...Option) (*CPU, error) {
	mem, err := memory.New(rom)
	if err != nil {
		return nil, err
	}
	return newCPU(mem, opts...), nil
}

// LoadFile creates an interpreter from a ROM file. Failures are returned as
// *memory.LoadError.
func LoadFile(path string, opts ...Option) (*CPU, error) {
	mem, err := memory.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c := newCPU(mem, opts...)
	c.logger.Debug("ROM loaded", log.String("path", path))
	return c, nil
}

func newCPU(mem *memory.Memory, opts ...Option) *CPU {
	c := &CPU{
		PC:     memory.ProgramStart,
		Memory: mem,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Step executes one instruction and then decrements both timers. An error
// leaves the machine at the faulting instruction and is fatal for the run.
func (c *CPU) Step() error {
	pc := c.PC
	word := c.Memory.ReadWord(pc)
	c.setPC(pc + 2)

	op := opcode.Decode(word)
	if c.trace {
		c.logger.Debug("Step",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", op.String()))
	}

	if err := c.execute(op); err != nil {
		c.PC = pc
		return fmt.Errorf("step at $%03X (%04X): %w", pc, word, err)
	}

	if c.trace && op.Kind.IsSkip() && c.PC == (pc+4)&memory.AddressMask {
		c.logger.Debug("Skip taken", log.Hex("pc", pc), log.Hex("next", c.PC))
	}

	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
	}
	c.cycles++
	return nil
}

// Run steps the machine until ctx is done, an instruction fails or steps
// instructions have executed. steps <= 0 runs until ctx is done.
func (c *CPU) Run(ctx context.Context, steps int) error {
	for i := 0; steps <= 0 || i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CPU) setPC(addr uint16) {
	c.PC = addr & memory.AddressMask
}

// SetKey marks key k (0-15) pressed or released. Other indices are ignored.
func (c *CPU) SetKey(k int, pressed bool) {
	if k < 0 || k >= NumKeys {
		return
	}
	c.keys[k] = pressed
}

// SetKeys replaces the whole keypad state.
func (c *CPU) SetKeys(keys [NumKeys]bool) {
	c.keys = keys
}

// Keys returns the keypad state seen by the next step.
func (c *CPU) Keys() [NumKeys]bool {
	return c.keys
}

// Display returns a copy of the 64x32 grid, row-major, cells 0 or 0xFF.
func (c *CPU) Display() [grid.Cells]uint8 {
	return c.display
}

// Pixel reports whether the cell at (x, y) is lit.
func (c *CPU) Pixel(x, y int) bool {
	if !grid.InBounds(x, y) {
		return false
	}
	return c.display[grid.Index(x, y)] != 0
}

// DisplayDirty reports whether the display changed since the last ClearDirty.
func (c *CPU) DisplayDirty() bool {
	return c.dirty
}

// ClearDirty marks the display as presented.
func (c *CPU) ClearDirty() {
	c.dirty = false
}

// ReturnAddress returns the address the next RET jumps to. The second
// result is false when no call is pending.
func (c *CPU) ReturnAddress() (uint16, bool) {
	return c.stack.Peek()
}

// Depth returns the number of pending calls.
func (c *CPU) Depth() int {
	return c.stack.Len()
}

// SoundActive reports whether the sound timer is running.
func (c *CPU) SoundActive() bool {
	return c.ST > 0
}

// Cycles returns the number of instructions executed successfully.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// DrawMode returns the sprite edge policy in effect.
func (c *CPU) DrawMode() DrawMode {
	return c.drawMode
}
