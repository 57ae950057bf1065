package opcode

// Decode maps a raw instruction word to its Opcode. Only the 0, 8, E and F
// groups look at a secondary field; group 0 matches on the low byte alone,
// so 0nnn words other than xxE0/xxEE fall through to Raw.
func Decode(w uint16) Opcode {
	switch w & 0xF000 {
	case 0x0000:
		switch KK(w) {
		case 0xE0:
			return Opcode{Kind: Cls, Mode: Implied{}, Raw: w}
		case 0xEE:
			return Opcode{Kind: Ret, Mode: Implied{}, Raw: w}
		}

	case 0x1000:
		return Opcode{Kind: Jp, Mode: Addr{Address: NNN(w)}, Raw: w}

	case 0x2000:
		return Opcode{Kind: Call, Mode: Addr{Address: NNN(w)}, Raw: w}

	case 0x3000:
		return Opcode{Kind: Se, Mode: VxByte{X: X(w), Byte: KK(w)}, Raw: w}

	case 0x4000:
		return Opcode{Kind: Sne, Mode: VxByte{X: X(w), Byte: KK(w)}, Raw: w}

	case 0x5000:
		return Opcode{Kind: Se, Mode: VxVy{X: X(w), Y: Y(w)}, Raw: w}

	case 0x6000:
		return Opcode{Kind: Ld, Mode: VxByte{X: X(w), Byte: KK(w)}, Raw: w}

	case 0x7000:
		return Opcode{Kind: Add, Mode: VxByte{X: X(w), Byte: KK(w)}, Raw: w}

	case 0x8000:
		if kind, ok := aluKinds[N(w)]; ok {
			return Opcode{Kind: kind, Mode: VxVy{X: X(w), Y: Y(w)}, Raw: w}
		}

	case 0x9000:
		return Opcode{Kind: Sne, Mode: VxVy{X: X(w), Y: Y(w)}, Raw: w}

	case 0xA000:
		return Opcode{Kind: Ld, Mode: IAddr{Address: NNN(w)}, Raw: w}

	case 0xB000:
		return Opcode{Kind: Jp, Mode: V0Addr{Address: NNN(w)}, Raw: w}

	case 0xC000:
		return Opcode{Kind: Rnd, Mode: VxByte{X: X(w), Byte: KK(w)}, Raw: w}

	case 0xD000:
		return Opcode{Kind: Drw, Mode: VxVyN{X: X(w), Y: Y(w), N: N(w)}, Raw: w}

	case 0xE000:
		switch KK(w) {
		case 0x9E:
			return Opcode{Kind: Skp, Mode: Vx{X: X(w)}, Raw: w}
		case 0xA1:
			return Opcode{Kind: Sknp, Mode: Vx{X: X(w)}, Raw: w}
		}

	case 0xF000:
		return decodeF(w)
	}

	return rawOpcode(w)
}

// aluKinds maps the low nibble of an 8xyN word to its instruction.
var aluKinds = map[uint8]Kind{
	0x0: Ld,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: Add,
	0x5: Sub,
	0x6: Shr,
	0x7: Subn,
	0xE: Shl,
}

func decodeF(w uint16) Opcode {
	x := X(w)
	switch KK(w) {
	case 0x07:
		return Opcode{Kind: Ld, Mode: VxDT{X: x}, Raw: w}
	case 0x0A:
		return Opcode{Kind: Ld, Mode: VxK{X: x}, Raw: w}
	case 0x15:
		return Opcode{Kind: Ld, Mode: DTVx{X: x}, Raw: w}
	case 0x18:
		return Opcode{Kind: Ld, Mode: STVx{X: x}, Raw: w}
	case 0x1E:
		return Opcode{Kind: Add, Mode: IVx{X: x}, Raw: w}
	case 0x29:
		return Opcode{Kind: Ld, Mode: FVx{X: x}, Raw: w}
	case 0x33:
		return Opcode{Kind: Ld, Mode: BVx{X: x}, Raw: w}
	case 0x55:
		return Opcode{Kind: Ld, Mode: MemVx{X: x}, Raw: w}
	case 0x65:
		return Opcode{Kind: Ld, Mode: VxMem{X: x}, Raw: w}
	}
	return rawOpcode(w)
}

func rawOpcode(w uint16) Opcode {
	return Opcode{Kind: Raw, Mode: RawWord{Word: w}, Raw: w}
}
