// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package strokefont provides a compact stroke font for vector displays and
// the interpreter that draws its glyphs.
//
// A glyph is a short program of 4-byte instructions. Each instruction draws a
// point, line, rectangle, circle or ellipse on a 16×16 design grid, with
// coordinates packed two to a byte. The last instruction of a glyph has the
// end-of-glyph bit set in its opcode.
package strokefont

import (
	"fmt"

	"github.com/xyscope/xyscope/raster"
)

// An Opcode is the first byte of an Instruction: the operation in the low
// bits and the end-of-glyph flag in bit 7.
type Opcode uint8

const (
	OpNop Opcode = iota
	OpPoint
	OpLine
	OpRect
	OpCircle
	OpEllipse

	// EndOfGlyph marks the last instruction of a glyph program.
	EndOfGlyph Opcode = 0x80

	opMask Opcode = 0x0f
)

// ID returns the operation with the end-of-glyph flag stripped.
func (o Opcode) ID() Opcode { return o & opMask }

// EndOfGlyph reports whether o ends its glyph program.
func (o Opcode) EndOfGlyph() bool { return o&EndOfGlyph != 0 }

// String returns the mnemonic of the operation, with a ".E" suffix when the
// end-of-glyph flag is set.
func (o Opcode) String() string {
	var s string
	switch o.ID() {
	case OpNop:
		s = "NOP"
	case OpPoint:
		s = "PNT"
	case OpLine:
		s = "LIN"
	case OpRect:
		s = "REC"
	case OpCircle:
		s = "CIR"
	case OpEllipse:
		s = "ELP"
	default:
		s = fmt.Sprintf("OP%d", o.ID())
	}
	if o.EndOfGlyph() {
		s += ".E"
	}
	return s
}

// Nibbles splits a packed coordinate byte into its high and low nibbles. For
// a point the high nibble is x and the low nibble is y.
func Nibbles(b byte) (hi, lo int) {
	return int(b >> 4), int(b & 0x0f)
}

// An Instruction is one step of a glyph program.
type Instruction struct {
	Opcode Opcode
	// P1 and P2 are packed coordinate pairs. P3 is the octant mask of a
	// circle or ellipse and is unused by other operations.
	P1, P2, P3 byte
}

// An Op is a decoded Instruction, in design units.
type Op struct {
	Code Opcode
	// Last is set on the final instruction of a glyph.
	Last bool
	// X0, Y0 is the first point, or the center of a circle or ellipse.
	X0, Y0 int
	// X1, Y1 is the second point, or the radii of a circle or ellipse.
	X1, Y1 int
	Mask   raster.Arc
}

// Decode unpacks the instruction's fields.
func (i Instruction) Decode() Op {
	x0, y0 := Nibbles(i.P1)
	x1, y1 := Nibbles(i.P2)
	return Op{
		Code: i.Opcode.ID(),
		Last: i.Opcode.EndOfGlyph(),
		X0:   x0,
		Y0:   y0,
		X1:   x1,
		Y1:   y1,
		Mask: raster.Arc(i.P3),
	}
}

// String returns the instruction in a form like "LIN (1,4) (4,14)".
func (i Instruction) String() string {
	op := i.Decode()
	switch op.Code {
	case OpNop:
		return i.Opcode.String()
	case OpPoint:
		return fmt.Sprintf("%v (%d,%d)", i.Opcode, op.X0, op.Y0)
	case OpCircle:
		return fmt.Sprintf("%v (%d,%d) r=%d mask=%08b", i.Opcode, op.X0, op.Y0, op.X1, uint8(op.Mask))
	case OpEllipse:
		return fmt.Sprintf("%v (%d,%d) r=%d,%d mask=%08b", i.Opcode, op.X0, op.Y0, op.X1, op.Y1, uint8(op.Mask))
	}
	return fmt.Sprintf("%v (%d,%d) (%d,%d)", i.Opcode, op.X0, op.Y0, op.X1, op.Y1)
}

const (
	offsetBits = 9
	offsetMask = 1<<offsetBits - 1
	widthMask  = 0x0f
)

// DecodeIndex splits a glyph index word into the program's offset in the
// ROM and its proportional advance width. The low 9 bits hold the offset
// plus one; ok is false if they are zero, meaning no glyph is defined.
func DecodeIndex(w uint16) (offset, width int, ok bool) {
	p := int(w & offsetMask)
	return p - 1, int(w>>offsetBits) & widthMask, p != 0
}

// IndexWord is the inverse of DecodeIndex for a defined glyph.
func IndexWord(offset, width int) uint16 {
	return uint16(width&widthMask)<<offsetBits | uint16(offset+1)&offsetMask
}

// A FormatError reports that a ROM or index table is malformed.
type FormatError string

func (e FormatError) Error() string {
	return "strokefont: invalid format: " + string(e)
}

const (
	// PlaceholderCode is the character whose program stands in for
	// undefined codes.
	PlaceholderCode = '~'
	// PlaceholderWidth is the proportional width of the placeholder.
	PlaceholderWidth = 9
)

// A Glyph is the program and advance width for one character code.
type Glyph struct {
	Code byte
	// Program runs up to and including the first end-of-glyph instruction.
	Program []Instruction
	// Width is the proportional advance, in design units.
	Width int
	// Placeholder is set when the code has no glyph of its own.
	Placeholder bool
}

// A Font is a glyph ROM and the index that maps character codes into it.
// A Font is immutable and safe for concurrent use.
type Font struct {
	rom    []Instruction
	glyphs [256]Glyph
}

var defaultFont *Font

func init() {
	f, err := NewFont(defaultROM[:], defaultIndex[:])
	if err != nil {
		panic(err)
	}
	defaultFont = f
}

// Default returns the built-in font: printable ASCII plus a two-part logo at
// codes 128 and 129.
func Default() *Font { return defaultFont }

// NewFont returns a Font for the given ROM and index. The index has one word
// per character code, as decoded by DecodeIndex, and may be shorter than 256
// entries. Undefined codes draw the program of PlaceholderCode, or nothing if
// that is undefined too.
func NewFont(rom []Instruction, index []uint16) (*Font, error) {
	if len(rom) == 0 {
		return nil, FormatError("empty ROM")
	}
	if len(index) > 256 {
		return nil, FormatError(fmt.Sprintf("index has %d entries, want at most 256", len(index)))
	}
	f := &Font{rom: rom}
	for c, w := range index {
		offset, width, ok := DecodeIndex(w)
		if !ok {
			continue
		}
		if offset >= len(rom) {
			return nil, FormatError(fmt.Sprintf("code %d: offset %d out of range", c, offset))
		}
		f.glyphs[c] = Glyph{
			Code:    byte(c),
			Program: program(rom, offset),
			Width:   width,
		}
	}
	ph := f.glyphs[PlaceholderCode].Program
	for c := range f.glyphs {
		if f.glyphs[c].Program == nil {
			f.glyphs[c] = Glyph{
				Code:        byte(c),
				Program:     ph,
				Width:       PlaceholderWidth,
				Placeholder: true,
			}
		}
	}
	return f, nil
}

// program returns the instructions from offset up to the first end-of-glyph
// flag, or to the end of the ROM.
func program(rom []Instruction, offset int) []Instruction {
	for i := offset; i < len(rom); i++ {
		if rom[i].Opcode.EndOfGlyph() {
			return rom[offset : i+1 : i+1]
		}
	}
	return rom[offset:len(rom):len(rom)]
}

// Lookup returns the glyph for c. Codes without a glyph of their own return
// the placeholder.
func (f *Font) Lookup(c byte) Glyph { return f.glyphs[c] }

// Defined reports whether c has a glyph of its own.
func (f *Font) Defined(c byte) bool { return !f.glyphs[c].Placeholder }

// ROM returns the font's instruction table. It must not be modified.
func (f *Font) ROM() []Instruction { return f.rom }

// Spacing selects how far the cursor advances after each character. Zero is
// proportional spacing, taking the width from the glyph index; any other
// value is a fixed advance in design units.
type Spacing int

const (
	Proportional Spacing = 0
	MonoTight    Spacing = 8
	Mono         Spacing = 10
	MonoWide     Spacing = 12

	// MaxSpacing is the widest fixed advance.
	MaxSpacing Spacing = 15
)

// Valid reports whether s is proportional or a fixed advance up to
// MaxSpacing.
func (s Spacing) Valid() bool { return s >= 0 && s <= MaxSpacing }

// String returns the spacing name, or the fixed advance for unnamed levels.
func (s Spacing) String() string {
	switch s {
	case Proportional:
		return "proportional"
	case MonoTight:
		return "monotight"
	case Mono:
		return "mono"
	case MonoWide:
		return "monowide"
	}
	return fmt.Sprintf("mono%d", int(s))
}

// Advance returns the advance width of c in design units.
func (f *Font) Advance(c byte, s Spacing) int {
	if s == Proportional {
		return f.glyphs[c].Width
	}
	return int(s)
}
