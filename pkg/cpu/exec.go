package cpu

import (
	"fmt"

	"gochip8/pkg/grid"
	"gochip8/pkg/memory"
	"gochip8/pkg/opcode"

	"github.com/retroenv/retrogolib/log"
)

func (c *CPU) execute(op opcode.Opcode) error {
	switch op.Kind {
	case opcode.Raw:
		return c.raw(op)
	case opcode.Cls:
		return c.cls(op)
	case opcode.Ret:
		return c.ret(op)
	case opcode.Jp:
		return c.jp(op)
	case opcode.Call:
		return c.call(op)
	case opcode.Se:
		return c.se(op)
	case opcode.Sne:
		return c.sne(op)
	case opcode.Ld:
		return c.ld(op)
	case opcode.Add:
		return c.add(op)
	case opcode.Or, opcode.And, opcode.Xor:
		return c.bitwise(op)
	case opcode.Sub:
		return c.sub(op)
	case opcode.Subn:
		return c.subn(op)
	case opcode.Shr:
		return c.shr(op)
	case opcode.Shl:
		return c.shl(op)
	case opcode.Rnd:
		return c.rnd(op)
	case opcode.Drw:
		return c.drw(op)
	case opcode.Skp, opcode.Sknp:
		return c.skipKey(op)
	}
	return invalidMode(op)
}

func (c *CPU) raw(op opcode.Opcode) error {
	if _, ok := op.Mode.(opcode.RawWord); !ok {
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) cls(op opcode.Opcode) error {
	if _, ok := op.Mode.(opcode.Implied); !ok {
		return invalidMode(op)
	}
	c.display = [grid.Cells]uint8{}
	c.dirty = true
	return nil
}

func (c *CPU) ret(op opcode.Opcode) error {
	if _, ok := op.Mode.(opcode.Implied); !ok {
		return invalidMode(op)
	}
	addr, ok := c.stack.Pop()
	if !ok {
		return ErrCallStackEmpty
	}
	c.setPC(addr)
	c.logger.Debug("Return", log.Hex("address", addr), log.Int("depth", c.stack.Len()))
	return nil
}

func (c *CPU) jp(op opcode.Opcode) error {
	switch m := op.Mode.(type) {
	case opcode.Addr:
		c.setPC(m.Address)
	case opcode.V0Addr:
		c.setPC(uint16(c.V[0]) + m.Address)
	default:
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) call(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.Addr)
	if !ok {
		return invalidMode(op)
	}
	if c.stack.Full() {
		return ErrCallStackFull
	}
	if err := c.stack.Push(c.PC); err != nil {
		return fmt.Errorf("pushing return address: %w", err)
	}
	c.setPC(m.Address)
	c.logger.Debug("Call", log.Hex("address", m.Address), log.Int("depth", c.stack.Len()))
	return nil
}

func (c *CPU) skipIf(cond bool) {
	if cond {
		c.setPC(c.PC + 2)
	}
}

func (c *CPU) se(op opcode.Opcode) error {
	switch m := op.Mode.(type) {
	case opcode.VxByte:
		c.skipIf(c.V[m.X] == m.Byte)
	case opcode.VxVy:
		c.skipIf(c.V[m.X] == c.V[m.Y])
	default:
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) sne(op opcode.Opcode) error {
	switch m := op.Mode.(type) {
	case opcode.VxByte:
		c.skipIf(c.V[m.X] != m.Byte)
	case opcode.VxVy:
		c.skipIf(c.V[m.X] != c.V[m.Y])
	default:
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) ld(op opcode.Opcode) error {
	switch m := op.Mode.(type) {
	case opcode.VxByte:
		c.V[m.X] = m.Byte

	case opcode.VxVy:
		c.V[m.X] = c.V[m.Y]

	case opcode.IAddr:
		c.I = m.Address

	case opcode.VxDT:
		c.V[m.X] = c.DT

	case opcode.VxK:
		for k, pressed := range c.keys {
			if pressed {
				c.V[m.X] = uint8(k)
				return nil
			}
		}
		// refetch this instruction on the next step
		c.setPC(c.PC - 2)

	case opcode.DTVx:
		c.DT = c.V[m.X]

	case opcode.STVx:
		c.ST = c.V[m.X]

	case opcode.FVx:
		c.I = memory.GlyphAddress(c.V[m.X])

	case opcode.BVx:
		v := c.V[m.X]
		c.Memory.Write(c.I, v/100)
		c.Memory.Write(c.I+1, v/10%10)
		c.Memory.Write(c.I+2, v%10)

	case opcode.MemVx:
		for i := uint16(0); i <= uint16(m.X); i++ {
			c.Memory.Write(c.I+i, c.V[i])
		}

	case opcode.VxMem:
		for i := uint16(0); i <= uint16(m.X); i++ {
			c.V[i] = c.Memory.Read(c.I + i)
		}

	default:
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) add(op opcode.Opcode) error {
	switch m := op.Mode.(type) {
	case opcode.VxByte:
		c.V[m.X] += m.Byte

	case opcode.VxVy:
		sum := uint16(c.V[m.X]) + uint16(c.V[m.Y])
		c.V[m.X] = uint8(sum)
		c.V[RegF] = flag(sum > 0xFF)

	case opcode.IVx:
		c.I += uint16(c.V[m.X])

	default:
		return invalidMode(op)
	}
	return nil
}

func (c *CPU) bitwise(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVy)
	if !ok {
		return invalidMode(op)
	}
	switch op.Kind {
	case opcode.Or:
		c.V[m.X] |= c.V[m.Y]
	case opcode.And:
		c.V[m.X] &= c.V[m.Y]
	case opcode.Xor:
		c.V[m.X] ^= c.V[m.Y]
	}
	return nil
}

func (c *CPU) sub(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVy)
	if !ok {
		return invalidMode(op)
	}
	x, y := c.V[m.X], c.V[m.Y]
	c.V[m.X] = x - y
	c.V[RegF] = flag(x > y)
	return nil
}

func (c *CPU) subn(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVy)
	if !ok {
		return invalidMode(op)
	}
	x, y := c.V[m.X], c.V[m.Y]
	c.V[m.X] = y - x
	c.V[RegF] = flag(y > x)
	return nil
}

func (c *CPU) shr(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVy)
	if !ok {
		return invalidMode(op)
	}
	x := c.V[m.X]
	c.V[m.X] = x >> 1
	c.V[RegF] = x & 0x01
	return nil
}

func (c *CPU) shl(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVy)
	if !ok {
		return invalidMode(op)
	}
	x := c.V[m.X]
	c.V[m.X] = x << 1
	c.V[RegF] = x >> 7
	return nil
}

func (c *CPU) rnd(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxByte)
	if !ok {
		return invalidMode(op)
	}
	c.V[m.X] = uint8(c.rng.Uint32()) & m.Byte
	return nil
}

// drw XORs an N-byte sprite read from I onto the display at (Vx, Vy). VF is
// set when a lit cell is turned off.
func (c *CPU) drw(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.VxVyN)
	if !ok {
		return invalidMode(op)
	}

	x0 := int(c.V[m.X]) % grid.Width
	y0 := int(c.V[m.Y]) % grid.Height
	collision := false

	for row, sprite := range c.Memory.Slice(c.I, int(m.N)) {
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			x, y := x0+col, y0+row
			if c.drawMode == DrawClip && !grid.InBounds(x, y) {
				continue
			}
			x, y = grid.Wrap(x, y)

			idx := grid.Index(x, y)
			if c.display[idx] == pixelOn {
				collision = true
			}
			c.display[idx] ^= pixelOn
		}
	}

	c.V[RegF] = flag(collision)
	c.dirty = true
	return nil
}

func (c *CPU) skipKey(op opcode.Opcode) error {
	m, ok := op.Mode.(opcode.Vx)
	if !ok {
		return invalidMode(op)
	}
	pressed := c.keys[c.V[m.X]&0x0F]
	if op.Kind == opcode.Skp {
		c.skipIf(pressed)
	} else {
		c.skipIf(!pressed)
	}
	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
