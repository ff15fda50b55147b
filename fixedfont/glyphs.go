package fixedfont

// glyphs holds 5 column bytes per character code, top row in bit 0.
var glyphs = [...]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, // 0x00
	0x3E, 0x5B, 0x4F, 0x5B, 0x3E, // 0x01
	0x3E, 0x6B, 0x4F, 0x6B, 0x3E, // 0x02
	0x1C, 0x3E, 0x7C, 0x3E, 0x1C, // 0x03
	0x18, 0x3C, 0x7E, 0x3C, 0x18, // 0x04
	0x1C, 0x57, 0x7D, 0x57, 0x1C, // 0x05
	0x1C, 0x5E, 0x7F, 0x5E, 0x1C, // 0x06
	0x00, 0x18, 0x3C, 0x18, 0x00, // 0x07
	0xFF, 0xE7, 0xC3, 0xE7, 0xFF, // 0x08
	0x00, 0x18, 0x24, 0x18, 0x00, // 0x09
	0xFF, 0xE7, 0xDB, 0xE7, 0xFF, // 0x0a
	0x30, 0x48, 0x3A, 0x06, 0x0E, // 0x0b
	0x26, 0x29, 0x79, 0x29, 0x26, // 0x0c
	0x40, 0x7F, 0x05, 0x05, 0x07, // 0x0d
	0x40, 0x7F, 0x05, 0x25, 0x3F, // 0x0e
	0x5A, 0x3C, 0xE7, 0x3C, 0x5A, // 0x0f
	0x7F, 0x3E, 0x1C, 0x1C, 0x08, // 0x10
	0x08, 0x1C, 0x1C, 0x3E, 0x7F, // 0x11
	0x14, 0x22, 0x7F, 0x22, 0x14, // 0x12
	0x5F, 0x5F, 0x00, 0x5F, 0x5F, // 0x13
	0x06, 0x09, 0x7F, 0x01, 0x7F, // 0x14
	0x00, 0x66, 0x89, 0x95, 0x6A, // 0x15
	0x60, 0x60, 0x60, 0x60, 0x60, // 0x16
	0x94, 0xA2, 0xFF, 0xA2, 0x94, // 0x17
	0x08, 0x04, 0x7E, 0x04, 0x08, // 0x18
	0x10, 0x20, 0x7E, 0x20, 0x10, // 0x19
	0x08, 0x08, 0x2A, 0x1C, 0x08, // 0x1a
	0x08, 0x1C, 0x2A, 0x08, 0x08, // 0x1b
	0x1E, 0x10, 0x10, 0x10, 0x10, // 0x1c
	0x0C, 0x1E, 0x0C, 0x1E, 0x0C, // 0x1d
	0x30, 0x38, 0x3E, 0x38, 0x30, // 0x1e
	0x06, 0x0E, 0x3E, 0x0E, 0x06, // 0x1f
	0x00, 0x00, 0x00, 0x00, 0x00, // ' '
	0x00, 0x00, 0x5F, 0x00, 0x00, // '!'
	0x00, 0x07, 0x00, 0x07, 0x00, // '"'
	0x14, 0x7F, 0x14, 0x7F, 0x14, // '#'
	0x24, 0x2A, 0x7F, 0x2A, 0x12, // '$'
	0x23, 0x13, 0x08, 0x64, 0x62, // '%'
	0x36, 0x49, 0x56, 0x20, 0x50, // '&'
	0x00, 0x08, 0x07, 0x03, 0x00, // '\''
	0x00, 0x1C, 0x22, 0x41, 0x00, // '('
	0x00, 0x41, 0x22, 0x1C, 0x00, // ')'
	0x2A, 0x1C, 0x7F, 0x1C, 0x2A, // '*'
	0x08, 0x08, 0x3E, 0x08, 0x08, // '+'
	0x00, 0x80, 0x70, 0x30, 0x00, // ','
	0x08, 0x08, 0x08, 0x08, 0x08, // '-'
	0x00, 0x00, 0x60, 0x60, 0x00, // '.'
	0x20, 0x10, 0x08, 0x04, 0x02, // '/'
	0x3E, 0x51, 0x49, 0x45, 0x3E, // '0'
	0x00, 0x42, 0x7F, 0x40, 0x00, // '1'
	0x72, 0x49, 0x49, 0x49, 0x46, // '2'
	0x21, 0x41, 0x49, 0x4D, 0x33, // '3'
	0x18, 0x14, 0x12, 0x7F, 0x10, // '4'
	0x27, 0x45, 0x45, 0x45, 0x39, // '5'
	0x3C, 0x4A, 0x49, 0x49, 0x31, // '6'
	0x41, 0x21, 0x11, 0x09, 0x07, // '7'
	0x36, 0x49, 0x49, 0x49, 0x36, // '8'
	0x46, 0x49, 0x49, 0x29, 0x1E, // '9'
	0x00, 0x00, 0x14, 0x00, 0x00, // ':'
	0x00, 0x40, 0x34, 0x00, 0x00, // ';'
	0x00, 0x08, 0x14, 0x22, 0x41, // '<'
	0x14, 0x14, 0x14, 0x14, 0x14, // '='
	0x00, 0x41, 0x22, 0x14, 0x08, // '>'
	0x02, 0x01, 0x59, 0x09, 0x06, // '?'
	0x3E, 0x41, 0x5D, 0x59, 0x4E, // '@'
	0x7C, 0x12, 0x11, 0x12, 0x7C, // 'A'
	0x7F, 0x49, 0x49, 0x49, 0x36, // 'B'
	0x3E, 0x41, 0x41, 0x41, 0x22, // 'C'
	0x7F, 0x41, 0x41, 0x41, 0x3E, // 'D'
	0x7F, 0x49, 0x49, 0x49, 0x41, // 'E'
	0x7F, 0x09, 0x09, 0x09, 0x01, // 'F'
	0x3E, 0x41, 0x41, 0x51, 0x73, // 'G'
	0x7F, 0x08, 0x08, 0x08, 0x7F, // 'H'
	0x00, 0x41, 0x7F, 0x41, 0x00, // 'I'
	0x20, 0x40, 0x41, 0x3F, 0x01, // 'J'
	0x7F, 0x08, 0x14, 0x22, 0x41, // 'K'
	0x7F, 0x40, 0x40, 0x40, 0x40, // 'L'
	0x7F, 0x02, 0x1C, 0x02, 0x7F, // 'M'
	0x7F, 0x04, 0x08, 0x10, 0x7F, // 'N'
	0x3E, 0x41, 0x41, 0x41, 0x3E, // 'O'
	0x7F, 0x09, 0x09, 0x09, 0x06, // 'P'
	0x3E, 0x41, 0x51, 0x21, 0x5E, // 'Q'
	0x7F, 0x09, 0x19, 0x29, 0x46, // 'R'
	0x26, 0x49, 0x49, 0x49, 0x32, // 'S'
	0x03, 0x01, 0x7F, 0x01, 0x03, // 'T'
	0x3F, 0x40, 0x40, 0x40, 0x3F, // 'U'
	0x1F, 0x20, 0x40, 0x20, 0x1F, // 'V'
	0x3F, 0x40, 0x38, 0x40, 0x3F, // 'W'
	0x63, 0x14, 0x08, 0x14, 0x63, // 'X'
	0x03, 0x04, 0x78, 0x04, 0x03, // 'Y'
	0x61, 0x59, 0x49, 0x4D, 0x43, // 'Z'
	0x00, 0x7F, 0x41, 0x41, 0x41, // '['
	0x02, 0x04, 0x08, 0x10, 0x20, // '\\'
	0x00, 0x41, 0x41, 0x41, 0x7F, // ']'
	0x04, 0x02, 0x01, 0x02, 0x04, // '^'
	0x40, 0x40, 0x40, 0x40, 0x40, // '_'
	0x00, 0x03, 0x07, 0x08, 0x00, // '`'
	0x20, 0x54, 0x54, 0x78, 0x40, // 'a'
	0x7F, 0x28, 0x44, 0x44, 0x38, // 'b'
	0x38, 0x44, 0x44, 0x44, 0x28, // 'c'
	0x38, 0x44, 0x44, 0x28, 0x7F, // 'd'
	0x38, 0x54, 0x54, 0x54, 0x18, // 'e'
	0x00, 0x08, 0x7E, 0x09, 0x02, // 'f'
	0x18, 0xA4, 0xA4, 0x9C, 0x78, // 'g'
	0x7F, 0x08, 0x04, 0x04, 0x78, // 'h'
	0x00, 0x44, 0x7D, 0x40, 0x00, // 'i'
	0x20, 0x40, 0x40, 0x3D, 0x00, // 'j'
	0x7F, 0x10, 0x28, 0x44, 0x00, // 'k'
	0x00, 0x41, 0x7F, 0x40, 0x00, // 'l'
	0x7C, 0x04, 0x78, 0x04, 0x78, // 'm'
	0x7C, 0x08, 0x04, 0x04, 0x78, // 'n'
	0x38, 0x44, 0x44, 0x44, 0x38, // 'o'
	0xFC, 0x18, 0x24, 0x24, 0x18, // 'p'
	0x18, 0x24, 0x24, 0x18, 0xFC, // 'q'
	0x7C, 0x08, 0x04, 0x04, 0x08, // 'r'
	0x48, 0x54, 0x54, 0x54, 0x24, // 's'
	0x04, 0x04, 0x3F, 0x44, 0x24, // 't'
	0x3C, 0x40, 0x40, 0x20, 0x7C, // 'u'
	0x1C, 0x20, 0x40, 0x20, 0x1C, // 'v'
	0x3C, 0x40, 0x30, 0x40, 0x3C, // 'w'
	0x44, 0x28, 0x10, 0x28, 0x44, // 'x'
	0x4C, 0x90, 0x90, 0x90, 0x7C, // 'y'
	0x44, 0x64, 0x54, 0x4C, 0x44, // 'z'
	0x00, 0x08, 0x36, 0x41, 0x00, // '{'
	0x00, 0x00, 0x77, 0x00, 0x00, // '|'
	0x00, 0x41, 0x36, 0x08, 0x00, // '}'
	0x02, 0x01, 0x02, 0x04, 0x02, // '~'
	0x3C, 0x26, 0x23, 0x26, 0x3C, // 0x7f
	0x1E, 0xA1, 0xA1, 0x61, 0x12, // 0x80
	0x3A, 0x40, 0x40, 0x20, 0x7A, // 0x81
	0x38, 0x54, 0x54, 0x55, 0x59, // 0x82
	0x21, 0x55, 0x55, 0x79, 0x41, // 0x83
	0x21, 0x54, 0x54, 0x78, 0x41, // 0x84
	0x21, 0x55, 0x54, 0x78, 0x40, // 0x85
	0x20, 0x54, 0x55, 0x79, 0x40, // 0x86
	0x0C, 0x1E, 0x52, 0x72, 0x12, // 0x87
	0x39, 0x55, 0x55, 0x55, 0x59, // 0x88
	0x39, 0x54, 0x54, 0x54, 0x59, // 0x89
	0x39, 0x55, 0x54, 0x54, 0x58, // 0x8a
	0x00, 0x00, 0x45, 0x7C, 0x41, // 0x8b
	0x00, 0x02, 0x45, 0x7D, 0x42, // 0x8c
	0x00, 0x01, 0x45, 0x7C, 0x40, // 0x8d
	0xF0, 0x29, 0x24, 0x29, 0xF0, // 0x8e
	0xF0, 0x28, 0x25, 0x28, 0xF0, // 0x8f
	0x7C, 0x54, 0x55, 0x45, 0x00, // 0x90
	0x20, 0x54, 0x54, 0x7C, 0x54, // 0x91
	0x7C, 0x0A, 0x09, 0x7F, 0x49, // 0x92
	0x32, 0x49, 0x49, 0x49, 0x32, // 0x93
	0x32, 0x48, 0x48, 0x48, 0x32, // 0x94
	0x32, 0x4A, 0x48, 0x48, 0x30, // 0x95
	0x3A, 0x41, 0x41, 0x21, 0x7A, // 0x96
	0x3A, 0x42, 0x40, 0x20, 0x78, // 0x97
	0x00, 0x9D, 0xA0, 0xA0, 0x7D, // 0x98
	0x39, 0x44, 0x44, 0x44, 0x39, // 0x99
	0x3D, 0x40, 0x40, 0x40, 0x3D, // 0x9a
	0x3C, 0x24, 0xFF, 0x24, 0x24, // 0x9b
	0x48, 0x7E, 0x49, 0x43, 0x66, // 0x9c
	0x2B, 0x2F, 0xFC, 0x2F, 0x2B, // 0x9d
	0xFF, 0x09, 0x29, 0xF6, 0x20, // 0x9e
	0xC0, 0x88, 0x7E, 0x09, 0x03, // 0x9f
	0x20, 0x54, 0x54, 0x79, 0x41, // 0xa0
	0x00, 0x00, 0x44, 0x7D, 0x41, // 0xa1
	0x30, 0x48, 0x48, 0x4A, 0x32, // 0xa2
	0x38, 0x40, 0x40, 0x22, 0x7A, // 0xa3
	0x00, 0x7A, 0x0A, 0x0A, 0x72, // 0xa4
	0x7D, 0x0D, 0x19, 0x31, 0x7D, // 0xa5
	0x26, 0x29, 0x29, 0x2F, 0x28, // 0xa6
	0x26, 0x29, 0x29, 0x29, 0x26, // 0xa7
	0x30, 0x48, 0x4D, 0x40, 0x20, // 0xa8
	0x38, 0x08, 0x08, 0x08, 0x08, // 0xa9
	0x08, 0x08, 0x08, 0x08, 0x38, // 0xaa
	0x2F, 0x10, 0xC8, 0xAC, 0xBA, // 0xab
	0x2F, 0x10, 0x28, 0x34, 0xFA, // 0xac
	0x00, 0x00, 0x7B, 0x00, 0x00, // 0xad
	0x08, 0x14, 0x2A, 0x14, 0x22, // 0xae
	0x22, 0x14, 0x2A, 0x14, 0x08, // 0xaf
	0xAA, 0x00, 0x55, 0x00, 0xAA, // 0xb0
	0xAA, 0x55, 0xAA, 0x55, 0xAA, // 0xb1
	0x00, 0x00, 0x00, 0xFF, 0x00, // 0xb2
	0x10, 0x10, 0x10, 0xFF, 0x00, // 0xb3
	0x14, 0x14, 0x14, 0xFF, 0x00, // 0xb4
	0x10, 0x10, 0xFF, 0x00, 0xFF, // 0xb5
	0x10, 0x10, 0xF0, 0x10, 0xF0, // 0xb6
	0x14, 0x14, 0x14, 0xFC, 0x00, // 0xb7
	0x14, 0x14, 0xF7, 0x00, 0xFF, // 0xb8
	0x00, 0x00, 0xFF, 0x00, 0xFF, // 0xb9
	0x14, 0x14, 0xF4, 0x04, 0xFC, // 0xba
	0x14, 0x14, 0x17, 0x10, 0x1F, // 0xbb
	0x10, 0x10, 0x1F, 0x10, 0x1F, // 0xbc
	0x14, 0x14, 0x14, 0x1F, 0x00, // 0xbd
	0x10, 0x10, 0x10, 0xF0, 0x00, // 0xbe
	0x00, 0x00, 0x00, 0x1F, 0x10, // 0xbf
	0x10, 0x10, 0x10, 0x1F, 0x10, // 0xc0
	0x10, 0x10, 0x10, 0xF0, 0x10, // 0xc1
	0x00, 0x00, 0x00, 0xFF, 0x10, // 0xc2
	0x10, 0x10, 0x10, 0x10, 0x10, // 0xc3
	0x10, 0x10, 0x10, 0xFF, 0x10, // 0xc4
	0x00, 0x00, 0x00, 0xFF, 0x14, // 0xc5
	0x00, 0x00, 0xFF, 0x00, 0xFF, // 0xc6
	0x00, 0x00, 0x1F, 0x10, 0x17, // 0xc7
	0x00, 0x00, 0xFC, 0x04, 0xF4, // 0xc8
	0x14, 0x14, 0x17, 0x10, 0x17, // 0xc9
	0x14, 0x14, 0xF4, 0x04, 0xF4, // 0xca
	0x00, 0x00, 0xFF, 0x00, 0xF7, // 0xcb
	0x14, 0x14, 0x14, 0x14, 0x14, // 0xcc
	0x14, 0x14, 0xF7, 0x00, 0xF7, // 0xcd
	0x14, 0x14, 0x14, 0x17, 0x14, // 0xce
	0x10, 0x10, 0x1F, 0x10, 0x1F, // 0xcf
	0x14, 0x14, 0x14, 0xF4, 0x14, // 0xd0
	0x10, 0x10, 0xF0, 0x10, 0xF0, // 0xd1
	0x00, 0x00, 0x1F, 0x10, 0x1F, // 0xd2
	0x00, 0x00, 0x00, 0x1F, 0x14, // 0xd3
	0x00, 0x00, 0x00, 0xFC, 0x14, // 0xd4
	0x00, 0x00, 0xF0, 0x10, 0xF0, // 0xd5
	0x10, 0x10, 0xFF, 0x10, 0xFF, // 0xd6
	0x14, 0x14, 0x14, 0xFF, 0x14, // 0xd7
	0x10, 0x10, 0x10, 0x1F, 0x00, // 0xd8
	0x00, 0x00, 0x00, 0xF0, 0x10, // 0xd9
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xda
	0xF0, 0xF0, 0xF0, 0xF0, 0xF0, // 0xdb
	0xFF, 0xFF, 0xFF, 0x00, 0x00, // 0xdc
	0x00, 0x00, 0x00, 0xFF, 0xFF, // 0xdd
	0x0F, 0x0F, 0x0F, 0x0F, 0x0F, // 0xde
	0x38, 0x44, 0x44, 0x38, 0x44, // 0xdf
	0x7C, 0x2A, 0x2A, 0x3E, 0x14, // 0xe0
	0x7E, 0x02, 0x02, 0x06, 0x06, // 0xe1
	0x02, 0x7E, 0x02, 0x7E, 0x02, // 0xe2
	0x63, 0x55, 0x49, 0x41, 0x63, // 0xe3
	0x38, 0x44, 0x44, 0x3C, 0x04, // 0xe4
	0x40, 0x7E, 0x20, 0x1E, 0x20, // 0xe5
	0x06, 0x02, 0x7E, 0x02, 0x02, // 0xe6
	0x99, 0xA5, 0xE7, 0xA5, 0x99, // 0xe7
	0x1C, 0x2A, 0x49, 0x2A, 0x1C, // 0xe8
	0x4C, 0x72, 0x01, 0x72, 0x4C, // 0xe9
	0x30, 0x4A, 0x4D, 0x4D, 0x30, // 0xea
	0x30, 0x48, 0x78, 0x48, 0x30, // 0xeb
	0xBC, 0x62, 0x5A, 0x46, 0x3D, // 0xec
	0x3E, 0x49, 0x49, 0x49, 0x00, // 0xed
	0x7E, 0x01, 0x01, 0x01, 0x7E, // 0xee
	0x2A, 0x2A, 0x2A, 0x2A, 0x2A, // 0xef
	0x44, 0x44, 0x5F, 0x44, 0x44, // 0xf0
	0x40, 0x51, 0x4A, 0x44, 0x40, // 0xf1
	0x40, 0x44, 0x4A, 0x51, 0x40, // 0xf2
	0x00, 0x00, 0xFF, 0x01, 0x03, // 0xf3
	0xE0, 0x80, 0xFF, 0x00, 0x00, // 0xf4
	0x08, 0x08, 0x6B, 0x6B, 0x08, // 0xf5
	0x36, 0x12, 0x36, 0x24, 0x36, // 0xf6
	0x06, 0x0F, 0x09, 0x0F, 0x06, // 0xf7
	0x00, 0x00, 0x18, 0x18, 0x00, // 0xf8
	0x00, 0x00, 0x10, 0x10, 0x00, // 0xf9
	0x30, 0x40, 0xFF, 0x01, 0x01, // 0xfa
	0x00, 0x1F, 0x01, 0x01, 0x1E, // 0xfb
	0x00, 0x19, 0x1D, 0x17, 0x12, // 0xfc
	0x00, 0x3C, 0x3C, 0x3C, 0x3C, // 0xfd
	0x00, 0x00, 0x00, 0x00, 0x00, // 0xfe
}
