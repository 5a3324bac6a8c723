// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package strokefont

// defaultROM holds the glyph programs of the built-in font. Each glyph is
// drawn on a 16×16 grid with the origin at the bottom left of the cell.
var defaultROM = [...]Instruction{
	// ' '
	{OpNop | EndOfGlyph, 0x00, 0x00, 0x00},

	// '!'
	{OpLine, 0x2E, 0x28, 0x00},
	{OpCircle | EndOfGlyph, 0x25, 0x11, 0xFF},

	// '"'
	{OpLine, 0x2D, 0x2B, 0x00},
	{OpLine | EndOfGlyph, 0x4D, 0x4B, 0x00},

	// '#'
	{OpLine, 0x3D, 0x26, 0x3E},
	{OpLine, 0x5D, 0x46, 0x7C},
	{OpLine, 0x1B, 0x6B, 0x00},
	{OpLine | EndOfGlyph, 0x18, 0x68, 0x00},

	// '$'
	{OpCircle, 0x3B, 0x22, 0xC7},
	{OpCircle, 0x37, 0x22, 0x7C},
	{OpLine | EndOfGlyph, 0x3E, 0x34, 0x00},

	// '%'
	{OpLine, 0x6E, 0x14, 0xFC},
	{OpCircle, 0x2C, 0x11, 0xFF},
	{OpCircle | EndOfGlyph, 0x55, 0x11, 0xFF},

	// '&'
	{OpCircle, 0x3C, 0x11, 0x4F},
	{OpCircle, 0x37, 0x22, 0xE1},
	{OpLine, 0x65, 0x2B, 0x00},
	{OpLine, 0x4B, 0x18, 0x00},
	{OpLine | EndOfGlyph, 0x56, 0x67, 0x00},

	// '\''
	{OpLine | EndOfGlyph, 0x2D, 0x2B, 0x80},

	// '('
	{OpEllipse | EndOfGlyph, 0x39, 0x25, 0xC3},

	// ')'
	{OpEllipse | EndOfGlyph, 0x19, 0x25, 0x3C},

	// '*'
	{OpLine, 0x19, 0x79, 0x00},
	{OpLine, 0x27, 0x6B, 0x00},
	{OpLine, 0x46, 0x4C, 0x00},
	{OpLine | EndOfGlyph, 0x2B, 0x67, 0x00},

	// '+'
	{OpLine, 0x19, 0x79, 0x00},
	{OpLine | EndOfGlyph, 0x46, 0x4C, 0x00},

	// ','
	{OpCircle, 0x25, 0x11, 0xFF},
	{OpEllipse | EndOfGlyph, 0x25, 0x13, 0x30},

	// '-'
	{OpLine | EndOfGlyph, 0x19, 0x79, 0x00},

	// '.'
	{OpCircle | EndOfGlyph, 0x35, 0x11, 0xFF},

	// '/'
	{OpLine | EndOfGlyph, 0x6E, 0x14, 0x00},

	// '0'
	{OpEllipse, 0x49, 0x35, 0xFF},
	{OpLine | EndOfGlyph, 0x14, 0x7E, 0x00},

	// '1'
	{OpLine, 0x2C, 0x4E, 0x00},
	{OpLine, 0x4E, 0x44, 0x00},
	{OpLine | EndOfGlyph, 0x24, 0x64, 0x00},

	// '2'
	{OpEllipse, 0x3C, 0x22, 0x03},
	{OpEllipse, 0x4C, 0x22, 0x1C},
	{OpLine, 0x3E, 0x4E, 0x00},
	{OpLine, 0x6B, 0x15, 0x00},
	{OpEllipse, 0x34, 0x22, 0x01},
	{OpLine | EndOfGlyph, 0x14, 0x64, 0x00},

	// '3'
	{OpEllipse, 0x3C, 0x22, 0x3E},
	{OpEllipse | EndOfGlyph, 0x37, 0x33, 0x7C},

	// '4'
	{OpLine, 0x54, 0x5E, 0x00},
	{OpLine, 0x5E, 0x18, 0x00},
	{OpLine | EndOfGlyph, 0x18, 0x68, 0x00},

	// '5'
	{OpEllipse, 0x47, 0x33, 0xFC},
	{OpLine, 0x4A, 0x2A, 0x00},
	{OpLine, 0x2A, 0x3E, 0x00},
	{OpLine | EndOfGlyph, 0x3E, 0x7E, 0x00},

	// '6'
	{OpEllipse, 0x47, 0x33, 0xFF},
	{OpLine | EndOfGlyph, 0x29, 0x5E, 0x00},

	// '7'
	{OpLine, 0x24, 0x7E, 0x00},
	{OpLine | EndOfGlyph, 0x7E, 0x1E, 0x00},

	// '8'
	{OpEllipse, 0x47, 0x33, 0xFF},
	{OpEllipse | EndOfGlyph, 0x4C, 0x22, 0xFF},

	// '9'
	{OpEllipse, 0x4B, 0x33, 0xFF},
	{OpLine | EndOfGlyph, 0x7A, 0x44, 0x00},

	// ':'
	{OpCircle, 0x3B, 0x11, 0xFF},
	{OpCircle | EndOfGlyph, 0x37, 0x11, 0xFF},

	// ';'
	{OpCircle, 0x3B, 0x11, 0xFF},
	{OpCircle, 0x37, 0x11, 0xFF},
	{OpLine | EndOfGlyph, 0x46, 0x34, 0x01},

	// '<'
	{OpLine, 0x19, 0x4C, 0x00},
	{OpLine | EndOfGlyph, 0x19, 0x46, 0x00},

	// '='
	{OpLine, 0x1A, 0x5A, 0x00},
	{OpLine | EndOfGlyph, 0x17, 0x57, 0x00},

	// '>'
	{OpLine, 0x1C, 0x49, 0x00},
	{OpLine | EndOfGlyph, 0x16, 0x49, 0x00},

	// '?'
	{OpCircle, 0x3C, 0x22, 0x3F},
	{OpLine, 0x3A, 0x38, 0x00},
	{OpCircle | EndOfGlyph, 0x35, 0x11, 0xFF},

	// '@'
	{OpEllipse, 0x49, 0x35, 0xCF},
	{OpLine, 0x44, 0x74, 0x00},
	{OpEllipse, 0x4A, 0x12, 0xC7},
	{OpLine, 0x5B, 0x58, 0x00},
	{OpEllipse | EndOfGlyph, 0x59, 0x21, 0x70},

	// 'A'
	{OpLine, 0x14, 0x4E, 0x00},
	{OpLine, 0x4E, 0x74, 0x00},
	{OpLine | EndOfGlyph, 0x38, 0x58, 0x00},

	// 'B'
	{OpLine, 0x34, 0x14, 0x00},
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x1A, 0x3A, 0x00},
	{OpLine, 0x1E, 0x3E, 0x00},
	{OpCircle, 0x3C, 0x22, 0x3C},
	{OpCircle | EndOfGlyph, 0x37, 0x33, 0x3C},

	// 'C'
	{OpEllipse | EndOfGlyph, 0x49, 0x35, 0xE7},

	// 'D'
	{OpLine, 0x34, 0x14, 0xFF},
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x1E, 0x3E, 0x00},
	{OpEllipse | EndOfGlyph, 0x39, 0x35, 0x3C},

	// 'E'
	{OpLine, 0x6E, 0x1E, 0x00},
	{OpLine, 0x1E, 0x14, 0x00},
	{OpLine, 0x19, 0x49, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x64, 0x00},

	// 'F'
	{OpLine, 0x6E, 0x1E, 0x00},
	{OpLine, 0x1E, 0x14, 0x00},
	{OpLine | EndOfGlyph, 0x19, 0x49, 0x00},

	// 'G'
	{OpLine, 0x58, 0x68, 0x00},
	{OpLine, 0x68, 0x64, 0x00},
	{OpEllipse | EndOfGlyph, 0x49, 0x35, 0xE7},

	// 'H'
	{OpLine, 0x1E, 0x14, 0x00},
	{OpLine, 0x6E, 0x64, 0x00},
	{OpLine | EndOfGlyph, 0x19, 0x69, 0x00},

	// 'I'
	{OpLine, 0x3E, 0x34, 0x00},
	{OpLine, 0x1E, 0x5E, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x54, 0x00},

	// 'J'
	{OpCircle, 0x36, 0x22, 0xF0},
	{OpLine, 0x56, 0x5E, 0x00},
	{OpLine | EndOfGlyph, 0x3E, 0x6E, 0x00},

	// 'K'
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x64, 0x19, 0x00},
	{OpLine | EndOfGlyph, 0x6E, 0x19, 0x00},

	// 'L'
	{OpLine, 0x64, 0x14, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x1E, 0x00},

	// 'M'
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x74, 0x7E, 0x00},
	{OpLine, 0x1E, 0x47, 0x00},
	{OpLine | EndOfGlyph, 0x47, 0x7E, 0x00},

	// 'N'
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x6E, 0x64, 0x00},
	{OpLine | EndOfGlyph, 0x1E, 0x64, 0x00},

	// 'O'
	{OpEllipse | EndOfGlyph, 0x49, 0x35, 0xFF},

	// 'P'
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x19, 0x49, 0x00},
	{OpLine, 0x1E, 0x4E, 0x00},
	{OpLine, 0x6C, 0x6A, 0x3C},
	{OpCircle, 0x4C, 0x22, 0x0C},
	{OpCircle | EndOfGlyph, 0x4B, 0x22, 0x30},

	// 'Q'
	{OpEllipse, 0x49, 0x35, 0xFF},
	{OpLine | EndOfGlyph, 0x56, 0x74, 0x00},

	// 'R'
	{OpLine, 0x14, 0x1E, 0x00},
	{OpLine, 0x19, 0x49, 0x00},
	{OpLine, 0x1E, 0x4E, 0x00},
	{OpLine, 0x6C, 0x6A, 0x3C},
	{OpCircle, 0x4C, 0x22, 0x0C},
	{OpCircle, 0x4B, 0x22, 0x30},
	{OpLine | EndOfGlyph, 0x49, 0x64, 0x00},

	// 'S'
	{OpCircle, 0x4C, 0x22, 0xC7},
	{OpCircle | EndOfGlyph, 0x47, 0x33, 0x7C},

	// 'T'
	{OpLine, 0x44, 0x4E, 0x00},
	{OpLine, 0x1E, 0x4E, 0x00},
	{OpLine | EndOfGlyph, 0x7E, 0x4E, 0x00},

	// 'U'
	{OpCircle, 0x47, 0x33, 0xF0},
	{OpLine, 0x1E, 0x17, 0x00},
	{OpLine | EndOfGlyph, 0x7E, 0x77, 0x00},

	// 'V'
	{OpLine, 0x1E, 0x44, 0x00},
	{OpLine | EndOfGlyph, 0x44, 0x7E, 0x00},

	// 'W'
	{OpLine, 0x1E, 0x34, 0x00},
	{OpLine, 0x34, 0x5A, 0x00},
	{OpLine, 0x5A, 0x74, 0x00},
	{OpLine | EndOfGlyph, 0x74, 0x9E, 0x00},

	// 'X'
	{OpLine, 0x1E, 0x74, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x7E, 0x00},

	// 'Y'
	{OpLine, 0x1E, 0x49, 0x00},
	{OpLine, 0x7E, 0x49, 0x00},
	{OpLine | EndOfGlyph, 0x44, 0x49, 0x00},

	// 'Z'
	{OpLine, 0x1E, 0x7E, 0x00},
	{OpLine, 0x7E, 0x14, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x74, 0x00},

	// '['
	{OpLine, 0x1E, 0x14, 0x00},
	{OpLine, 0x1E, 0x3E, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x34, 0x00},

	// '\\'
	{OpLine | EndOfGlyph, 0x1E, 0x64, 0x00},

	// ']'
	{OpLine, 0x3E, 0x34, 0x00},
	{OpLine, 0x1E, 0x3E, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x34, 0x00},

	// '^'
	{OpLine, 0x19, 0x3D, 0x00},
	{OpLine | EndOfGlyph, 0x3D, 0x59, 0x00},

	// '_'
	{OpLine | EndOfGlyph, 0x02, 0x72, 0x00},

	// '`'
	{OpLine | EndOfGlyph, 0x2D, 0x4B, 0x00},

	// 'a'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine | EndOfGlyph, 0x57, 0x54, 0x00},

	// 'b'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine | EndOfGlyph, 0x1E, 0x14, 0x00},

	// 'c'
	{OpEllipse | EndOfGlyph, 0x37, 0x23, 0xE7},

	// 'd'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine | EndOfGlyph, 0x5E, 0x54, 0x00},

	// 'e'
	{OpEllipse, 0x37, 0x23, 0xEF},
	{OpLine | EndOfGlyph, 0x17, 0x57, 0x00},

	// 'f'
	{OpCircle, 0x4C, 0x22, 0x07},
	{OpLine, 0x19, 0x49, 0x00},
	{OpLine | EndOfGlyph, 0x24, 0x2C, 0x00},

	// 'g'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine, 0x56, 0x52, 0x00},
	{OpCircle | EndOfGlyph, 0x32, 0x22, 0x70},

	// 'h'
	{OpLine, 0x1E, 0x14, 0x00},
	{OpEllipse, 0x38, 0x22, 0x0F},
	{OpLine | EndOfGlyph, 0x58, 0x54, 0x00},

	// 'i'
	{OpCircle, 0x2C, 0x11, 0xFF},
	{OpLine | EndOfGlyph, 0x24, 0x29, 0x00},

	// 'j'
	{OpCircle, 0x3C, 0x11, 0xFF},
	{OpLine, 0x39, 0x33, 0x00},
	{OpCircle | EndOfGlyph, 0x13, 0x22, 0x30},

	// 'k'
	{OpLine, 0x1E, 0x14, 0x00},
	{OpLine, 0x17, 0x5A, 0x00},
	{OpLine | EndOfGlyph, 0x54, 0x38, 0x00},

	// 'l'
	{OpLine, 0x1E, 0x15, 0x00},
	{OpLine | EndOfGlyph, 0x24, 0x15, 0x00},

	// 'm'
	{OpLine, 0x0A, 0x04, 0x00},
	{OpLine, 0x44, 0x48, 0x00},
	{OpLine, 0x84, 0x88, 0x00},
	{OpCircle, 0x28, 0x22, 0x0F},
	{OpCircle | EndOfGlyph, 0x68, 0x22, 0x0F},

	// 'n'
	{OpLine, 0x1A, 0x14, 0x00},
	{OpLine, 0x54, 0x58, 0x00},
	{OpCircle | EndOfGlyph, 0x38, 0x22, 0x0F},

	// 'o'
	{OpEllipse | EndOfGlyph, 0x37, 0x23, 0xFF},

	// 'p'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine | EndOfGlyph, 0x18, 0x10, 0x00},

	// 'q'
	{OpEllipse, 0x37, 0x23, 0xFF},
	{OpLine | EndOfGlyph, 0x58, 0x50, 0x00},

	// 'r'
	{OpEllipse, 0x37, 0x23, 0x07},
	{OpLine | EndOfGlyph, 0x1A, 0x14, 0x00},

	// 's'
	{OpEllipse, 0x39, 0x21, 0xC7},
	{OpCircle | EndOfGlyph, 0x36, 0x22, 0x7C},

	// 't'
	{OpLine, 0x3E, 0x35, 0xE3},
	{OpLine, 0x1B, 0x5B, 0x3E},
	{OpCircle | EndOfGlyph, 0x45, 0x11, 0xC0},

	// 'u'
	{OpLine, 0x1A, 0x16, 0x00},
	{OpLine, 0x5A, 0x54, 0x00},
	{OpCircle | EndOfGlyph, 0x36, 0x22, 0xF0},

	// 'v'
	{OpLine, 0x1A, 0x34, 0x0F},
	{OpLine | EndOfGlyph, 0x5A, 0x34, 0x00},

	// 'w'
	{OpLine, 0x1A, 0x34, 0x00},
	{OpLine, 0x5A, 0x34, 0x00},
	{OpLine, 0x5A, 0x74, 0x00},
	{OpLine | EndOfGlyph, 0x9A, 0x74, 0x00},

	// 'x'
	{OpLine, 0x1A, 0x54, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x5A, 0x00},

	// 'y'
	{OpLine, 0x1A, 0x34, 0x00},
	{OpLine | EndOfGlyph, 0x5A, 0x21, 0x00},

	// 'z'
	{OpLine, 0x1A, 0x4A, 0x00},
	{OpLine, 0x4A, 0x14, 0x00},
	{OpLine | EndOfGlyph, 0x14, 0x44, 0x00},

	// '{'
	{OpCircle, 0x3D, 0x11, 0x03},
	{OpLine, 0x2D, 0x2A, 0x30},
	{OpCircle, 0x1A, 0x11, 0x30},
	{OpCircle, 0x18, 0x11, 0x0C},
	{OpLine, 0x28, 0x25, 0x00},
	{OpCircle | EndOfGlyph, 0x35, 0x11, 0xC0},

	// '|'
	{OpLine | EndOfGlyph, 0x2E, 0x24, 0x00},

	// '}'
	{OpCircle, 0x1D, 0x11, 0x0C},
	{OpLine, 0x2D, 0x2A, 0x00},
	{OpCircle, 0x3A, 0x11, 0xC0},
	{OpCircle, 0x38, 0x11, 0x03},
	{OpLine, 0x28, 0x25, 0x00},
	{OpCircle | EndOfGlyph, 0x15, 0x11, 0x30},

	// '~'
	{OpCircle, 0x2B, 0x11, 0x0F},
	{OpCircle | EndOfGlyph, 0x4B, 0x11, 0xF0},

	// DEL
	{OpRect, 0x0E, 0x74, 0x00},
	{OpLine, 0x1D, 0x65, 0x00},
	{OpLine | EndOfGlyph, 0x15, 0x6D, 0x00},

	// logo 1
	{OpCircle, 0x69, 0x55, 0xE7},
	{OpLine, 0x9D, 0xD9, 0x00},
	{OpLine, 0xD9, 0x95, 0x00},
	{OpLine | EndOfGlyph, 0x39, 0x99, 0x00},

	// logo 2
	{OpCircle, 0x79, 0x55, 0x7E},
	{OpLine, 0x4D, 0x09, 0x00},
	{OpLine, 0x09, 0x45, 0x00},
	{OpLine, 0x49, 0xA9, 0x00},
	{OpLine | EndOfGlyph, 0x7C, 0x76, 0x00},
}

// defaultIndex maps character codes to glyph programs. The low 9 bits of
// each word are the program's offset in defaultROM plus one, and the bits
// above them its proportional advance width. Codes without a glyph are 0.
var defaultIndex = [256]uint16{
	32: 0x1201, // ' ', width 9
	33: 0x0A02, // '!', width 5
	34: 0x0C04, // '"', width 6
	35: 0x1006, // '#', width 8
	36: 0x0E0A, // '$', width 7
	37: 0x100D, // '%', width 8
	38: 0x1010, // '&', width 8
	39: 0x0A15, // '\'', width 5
	40: 0x0A16, // '(', width 5
	41: 0x0A17, // ')', width 5
	42: 0x1218, // '*', width 9
	43: 0x121C, // '+', width 9
	44: 0x0A1E, // ',', width 5
	45: 0x1220, // '-', width 9
	46: 0x1221, // '.', width 9
	47: 0x1022, // '/', width 8
	48: 0x1223, // '0', width 9
	49: 0x1225, // '1', width 9
	50: 0x1228, // '2', width 9
	51: 0x122E, // '3', width 9
	52: 0x1230, // '4', width 9
	53: 0x1233, // '5', width 9
	54: 0x1237, // '6', width 9
	55: 0x1239, // '7', width 9
	56: 0x123B, // '8', width 9
	57: 0x123D, // '9', width 9
	58: 0x0E3F, // ':', width 7
	59: 0x0E41, // ';', width 7
	60: 0x0E44, // '<', width 7
	61: 0x0E46, // '=', width 7
	62: 0x0C48, // '>', width 6
	63: 0x0E4A, // '?', width 7
	64: 0x124D, // '@', width 9
	65: 0x1252, // 'A', width 9
	66: 0x1055, // 'B', width 8
	67: 0x105B, // 'C', width 8
	68: 0x105C, // 'D', width 8
	69: 0x1060, // 'E', width 8
	70: 0x1064, // 'F', width 8
	71: 0x1067, // 'G', width 8
	72: 0x106A, // 'H', width 8
	73: 0x0E6D, // 'I', width 7
	74: 0x1070, // 'J', width 8
	75: 0x1073, // 'K', width 8
	76: 0x1076, // 'L', width 8
	77: 0x1278, // 'M', width 9
	78: 0x107C, // 'N', width 8
	79: 0x127F, // 'O', width 9
	80: 0x1080, // 'P', width 8
	81: 0x1286, // 'Q', width 9
	82: 0x1088, // 'R', width 8
	83: 0x108F, // 'S', width 8
	84: 0x1291, // 'T', width 9
	85: 0x1294, // 'U', width 9
	86: 0x1297, // 'V', width 9
	87: 0x1699, // 'W', width 11
	88: 0x129D, // 'X', width 9
	89: 0x129F, // 'Y', width 9
	90: 0x12A2, // 'Z', width 9
	91: 0x0AA5, // '[', width 5
	92: 0x10A8, // '\\', width 8
	93: 0x0AA9, // ']', width 5
	94: 0x0EAC, // '^', width 7
	95: 0x10AE, // '_', width 8
	96: 0x0CAF, // '`', width 6
	97: 0x0EB0, // 'a', width 7
	98: 0x0EB2, // 'b', width 7
	99: 0x0CB4, // 'c', width 6
	100: 0x0EB5, // 'd', width 7
	101: 0x0EB7, // 'e', width 7
	102: 0x0CB9, // 'f', width 6
	103: 0x0EBC, // 'g', width 7
	104: 0x0EBF, // 'h', width 7
	105: 0x0AC2, // 'i', width 5
	106: 0x0AC4, // 'j', width 5
	107: 0x0EC7, // 'k', width 7
	108: 0x08CA, // 'l', width 4
	109: 0x14CC, // 'm', width 10
	110: 0x0ED1, // 'n', width 7
	111: 0x0ED4, // 'o', width 7
	112: 0x0ED5, // 'p', width 7
	113: 0x0ED7, // 'q', width 7
	114: 0x0ED9, // 'r', width 7
	115: 0x0EDB, // 's', width 7
	116: 0x0EDD, // 't', width 7
	117: 0x0EE0, // 'u', width 7
	118: 0x0EE3, // 'v', width 7
	119: 0x16E5, // 'w', width 11
	120: 0x0EE9, // 'x', width 7
	121: 0x0EEB, // 'y', width 7
	122: 0x0CED, // 'z', width 6
	123: 0x0AF0, // '{', width 5
	124: 0x08F6, // '|', width 4
	125: 0x0AF7, // '}', width 5
	126: 0x0EFD, // '~', width 7
	127: 0x10FF, // DEL, width 8
	128: 0x1B02, // logo 1, width 13
	129: 0x1D06, // logo 2, width 14
}
