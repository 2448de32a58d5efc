package sav

import (
	"bytes"
	"io"
	"strings"

	"github.com/bodgit/plumbing"
)

// The games store text in a proprietary single-byte encoding; 0xff
// terminates a string and pads fixed-width fields. Only the western
// character set is mapped, unmapped bytes decode to nothing so that a
// name with unknown glyphs still decodes structurally.
const (
	terminatorByte = 0xff
	fillerByte     = 0x00
)

//nolint:gochecknoglobals
var charMap = map[byte]rune{
	0x00: ' ', 0x50: ' ',
	0xa1: '0', 0xa2: '1', 0xa3: '2', 0xa4: '3', 0xa5: '4',
	0xa6: '5', 0xa7: '6', 0xa8: '7', 0xa9: '8', 0xaa: '9',
	0xbb: 'A', 0xbc: 'B', 0xbd: 'C', 0xbe: 'D', 0xbf: 'E',
	0xc0: 'F', 0xc1: 'G', 0xc2: 'H', 0xc3: 'I', 0xc4: 'J',
	0xc5: 'K', 0xc6: 'L', 0xc7: 'M', 0xc8: 'N', 0xc9: 'O',
	0xca: 'P', 0xcb: 'Q', 0xcc: 'R', 0xcd: 'S', 0xce: 'T',
	0xcf: 'U', 0xd0: 'V', 0xd1: 'W', 0xd2: 'X', 0xd3: 'Y',
	0xd4: 'Z',
	0xd5: 'a', 0xd6: 'b', 0xd7: 'c', 0xd8: 'd', 0xd9: 'e',
	0xda: 'f', 0xdb: 'g', 0xdc: 'h', 0xdd: 'i', 0xde: 'j',
	0xdf: 'k', 0xe0: 'l', 0xe1: 'm', 0xe2: 'n', 0xe3: 'o',
	0xe4: 'p', 0xe5: 'q', 0xe6: 'r', 0xe7: 's', 0xe8: 't',
	0xe9: 'u', 0xea: 'v', 0xeb: 'w', 0xec: 'x', 0xed: 'y',
	0xee: 'z',
	0x34: '!', 0x35: '?', 0x36: '.', 0x37: '-', 0x38: '·',
	0x39: '…', 0x3a: '“', 0x3b: '”', 0x3c: '‘', 0x3d: '’',
	0x3e: '♂', 0x3f: '♀', 0x51: '/', 0x54: ',', 0x55: '×',
	0x68: ':', 0x69: ';', 0x6a: '[', 0x6b: ']', 0x2d: '<',
	0x2e: '>', 0x79: '+', 0x7a: '%', 0x7b: '(', 0x7c: ')',
	0x85: '&',
}

//nolint:gochecknoglobals
var charMapReverse = func() map[rune]byte {
	m := make(map[rune]byte, len(charMap))

	// Lowest byte wins where two codes render the same glyph, so
	// encoding is deterministic.
	for b, r := range charMap {
		if ex, ok := m[r]; !ok || b < ex {
			m[r] = b
		}
	}

	return m
}()

// decodeText converts a fixed-width game string to UTF-8, stopping at
// the 0xff terminator.
func decodeText(b []byte) string {
	var sb strings.Builder

	for _, c := range b {
		if c == terminatorByte {
			break
		}

		if r, ok := charMap[c]; ok {
			sb.WriteRune(r)
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

// encodeText converts s to the game encoding, truncated and padded with
// the terminator byte to exactly width bytes. Characters outside the
// map encode as a blank.
func encodeText(s string, width int) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(width)

	for _, r := range s {
		if buf.Len() == width {
			break
		}

		c, ok := charMapReverse[r]
		if !ok {
			c = fillerByte
		}

		buf.WriteByte(c)
	}

	_, _ = io.CopyN(buf, plumbing.FillReader(terminatorByte), int64(width-buf.Len()))

	return buf.Bytes()
}
