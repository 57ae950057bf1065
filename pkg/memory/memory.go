package memory

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// Size is the number of addressable bytes.
	Size = 4096
	// AddressMask keeps the low 12 bits of any address.
	AddressMask = 0x0FFF

	// ProgramStart is where ROM bytes are copied and where execution begins.
	ProgramStart = 0x0200
	// ProgramSize is the largest ROM that fits above ProgramStart.
	ProgramSize = Size - ProgramStart

	// FontStart is the base address of the built-in glyph table.
	FontStart = 0x0050
	// GlyphSize is the number of bytes (rows) per glyph.
	GlyphSize = 5
)

// Fontset holds the hexadecimal digit glyphs 0-F, 5 rows of 4 pixels each.
var Fontset = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// ErrROMTooLarge is returned when a ROM does not fit above ProgramStart.
var ErrROMTooLarge = errors.New("rom too large")

// LoadError reports a ROM that could not be read or loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load ROM: %v", e.Err)
	}
	return fmt.Sprintf("failed to load ROM %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Memory is the 4KB address space. Every access masks the address to 12 bits,
// so no accessor can go out of range.
type Memory struct {
	data [Size]byte
}

// New creates a memory image with rom copied to ProgramStart and the glyph
// table written to FontStart.
func New(rom []byte) (*Memory, error) {
	if len(rom) > ProgramSize {
		return nil, fmt.Errorf("%w: %d bytes > %d bytes", ErrROMTooLarge, len(rom), ProgramSize)
	}

	m := &Memory{}
	copy(m.data[ProgramStart:], rom)
	copy(m.data[FontStart:], Fontset[:])
	return m, nil
}

// Load reads a ROM from r. Reads stop one byte past ProgramSize so an
// oversized ROM is detected without consuming an unbounded source.
func Load(r io.Reader) (*Memory, error) {
	rom, err := io.ReadAll(io.LimitReader(r, ProgramSize+1))
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	m, err := New(rom)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return m, nil
}

// LoadFile reads the ROM stored at path.
func LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	m, err := Load(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr&AddressMask]
}

// Write stores val at addr.
func (m *Memory) Write(addr uint16, val byte) {
	m.data[addr&AddressMask] = val
}

// ReadWord reads a big-endian 16-bit word. Both byte addresses are masked
// separately, so a fetch at 0xFFF wraps to 0x000 for the low byte.
func (m *Memory) ReadWord(addr uint16) uint16 {
	hi := uint16(m.Read(addr))
	lo := uint16(m.Read(addr + 1))
	return hi<<8 | lo
}

// Slice copies n bytes starting at addr, wrapping at the end of memory.
func (m *Memory) Slice(addr uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.Read(addr + uint16(i))
	}
	return out
}

// GlyphAddress returns the address of the glyph for digit v.
func GlyphAddress(v byte) uint16 {
	return FontStart + GlyphSize*uint16(v)
}
