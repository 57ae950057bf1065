package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// rawName is reported for words that did not decode to a known instruction.
const rawName = "raw"

var instructions = [kindCount]*chip8.Instruction{
	Cls:  chip8.ClsInst,
	Ret:  chip8.RetInst,
	Jp:   chip8.JpInst,
	Call: chip8.CallInst,
	Se:   chip8.SeInst,
	Sne:  chip8.SneInst,
	Ld:   chip8.LdInst,
	Add:  chip8.AddInst,
	Or:   chip8.OrInst,
	And:  chip8.AndInst,
	Xor:  chip8.XorInst,
	Sub:  chip8.SubInst,
	Shr:  chip8.ShrInst,
	Subn: chip8.SubnInst,
	Shl:  chip8.ShlInst,
	Rnd:  chip8.RndInst,
	Drw:  chip8.DrwInst,
	Skp:  chip8.SkpInst,
	Sknp: chip8.SknpInst,
}

// Instruction returns the instruction definition for k, or nil for Raw.
func (k Kind) Instruction() *chip8.Instruction {
	if k >= kindCount {
		return nil
	}
	return instructions[k]
}

// String returns the instruction mnemonic.
func (k Kind) String() string {
	ins := k.Instruction()
	if ins == nil {
		return rawName
	}
	return ins.Name
}

// IsSkip reports whether the instruction conditionally skips the next one.
func (k Kind) IsSkip() bool {
	ins := k.Instruction()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// Name returns the mnemonic of the decoded instruction.
func (o Opcode) Name() string {
	return o.Kind.String()
}

// String renders the instruction with its operands, e.g. "ld V0, $05".
func (o Opcode) String() string {
	operands := Operands(o.Mode)
	if operands == "" {
		return o.Name()
	}
	return o.Name() + " " + operands
}

// Operands formats an addressing mode payload.
func Operands(m Mode) string {
	switch m := m.(type) {
	case Implied:
		return ""
	case RawWord:
		return fmt.Sprintf("$%04X", m.Word)
	case Addr:
		return fmt.Sprintf("$%03X", m.Address)
	case VxByte:
		return fmt.Sprintf("V%X, $%02X", m.X, m.Byte)
	case VxVy:
		return fmt.Sprintf("V%X, V%X", m.X, m.Y)
	case IAddr:
		return fmt.Sprintf("I, $%03X", m.Address)
	case V0Addr:
		return fmt.Sprintf("V0, $%03X", m.Address)
	case VxVyN:
		return fmt.Sprintf("V%X, V%X, $%X", m.X, m.Y, m.N)
	case Vx:
		return fmt.Sprintf("V%X", m.X)
	case VxDT:
		return fmt.Sprintf("V%X, DT", m.X)
	case VxK:
		return fmt.Sprintf("V%X, K", m.X)
	case DTVx:
		return fmt.Sprintf("DT, V%X", m.X)
	case STVx:
		return fmt.Sprintf("ST, V%X", m.X)
	case IVx:
		return fmt.Sprintf("I, V%X", m.X)
	case FVx:
		return fmt.Sprintf("F, V%X", m.X)
	case BVx:
		return fmt.Sprintf("B, V%X", m.X)
	case MemVx:
		return fmt.Sprintf("[I], V%X", m.X)
	case VxMem:
		return fmt.Sprintf("V%X, [I]", m.X)
	}
	return ""
}
