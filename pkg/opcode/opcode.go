// Package opcode decodes raw 16-bit CHIP-8 instruction words into an
// instruction kind and an addressing mode payload.
//
// Decoding is total: every word decodes to exactly one Opcode. Words that do
// not match a known instruction decode to Kind Raw carrying the word itself,
// which the interpreter executes as a no-op.
package opcode

// Kind identifies an instruction independent of its addressing mode.
type Kind uint8

const (
	Raw Kind = iota
	Cls
	Ret
	Jp
	Call
	Se
	Sne
	Ld
	Add
	Or
	And
	Xor
	Sub
	Shr
	Subn
	Shl
	Rnd
	Drw
	Skp
	Sknp

	kindCount
)

// Mode is the addressing mode payload of a decoded instruction. The set of
// implementations is closed; handlers switch over the concrete types.
type Mode interface {
	mode()
}

// Implied is used by instructions without operands (CLS, RET).
type Implied struct{}

// RawWord carries an undecodable word.
type RawWord struct {
	Word uint16
}

// Addr is an absolute 12-bit address (JP addr, CALL addr).
type Addr struct {
	Address uint16
}

// VxByte is a register and an immediate byte.
type VxByte struct {
	X    uint8
	Byte uint8
}

// VxVy is a register pair.
type VxVy struct {
	X uint8
	Y uint8
}

// IAddr loads an address into the index register.
type IAddr struct {
	Address uint16
}

// V0Addr is a jump target offset by V0.
type V0Addr struct {
	Address uint16
}

// VxVyN is the draw operand: origin registers and sprite height.
type VxVyN struct {
	X uint8
	Y uint8
	N uint8
}

// Vx is a single register (SKP, SKNP).
type Vx struct {
	X uint8
}

// VxDT loads the delay timer into Vx.
type VxDT struct {
	X uint8
}

// VxK waits for a key press and stores the key in Vx.
type VxK struct {
	X uint8
}

// DTVx loads Vx into the delay timer.
type DTVx struct {
	X uint8
}

// STVx loads Vx into the sound timer.
type STVx struct {
	X uint8
}

// IVx adds Vx to the index register.
type IVx struct {
	X uint8
}

// FVx points the index register at the glyph for the digit in Vx.
type FVx struct {
	X uint8
}

// BVx stores the BCD digits of Vx at I, I+1, I+2.
type BVx struct {
	X uint8
}

// MemVx stores V0..Vx at I.
type MemVx struct {
	X uint8
}

// VxMem loads V0..Vx from I.
type VxMem struct {
	X uint8
}

func (Implied) mode() {}
func (RawWord) mode() {}
func (Addr) mode()    {}
func (VxByte) mode()  {}
func (VxVy) mode()    {}
func (IAddr) mode()   {}
func (V0Addr) mode()  {}
func (VxVyN) mode()   {}
func (Vx) mode()      {}
func (VxDT) mode()    {}
func (VxK) mode()     {}
func (DTVx) mode()    {}
func (STVx) mode()    {}
func (IVx) mode()     {}
func (FVx) mode()     {}
func (BVx) mode()     {}
func (MemVx) mode()   {}
func (VxMem) mode()   {}

// Opcode is a decoded instruction.
type Opcode struct {
	Kind Kind
	Mode Mode
	Raw  uint16
}

// X extracts the first register nibble.
func X(w uint16) uint8 {
	return uint8((w & 0x0F00) >> 8)
}

// Y extracts the second register nibble.
func Y(w uint16) uint8 {
	return uint8((w & 0x00F0) >> 4)
}

// N extracts the lowest nibble.
func N(w uint16) uint8 {
	return uint8(w & 0x000F)
}

// KK extracts the low byte.
func KK(w uint16) uint8 {
	return uint8(w & 0x00FF)
}

// NNN extracts the 12-bit address.
func NNN(w uint16) uint16 {
	return w & 0x0FFF
}
