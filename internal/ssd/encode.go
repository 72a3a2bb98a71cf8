// Package ssd implements a simulated seven-segment display: encoding digits
// into segment patterns and turning patterns into filled quads.
package ssd

import "strings"

// Segment indexes one of the seven bars of a digit cell.
type Segment uint8

// Segments in display order. Segment A is the most significant pattern bit.
const (
	SegA Segment = iota // top
	SegB                // upper right
	SegC                // lower right
	SegD                // bottom
	SegE                // lower left
	SegF                // upper left
	SegG                // middle
	segmentCount
)

// String returns the conventional lowercase segment letter.
func (s Segment) String() string {
	if s >= segmentCount {
		return "?"
	}
	return string(rune('a' + s))
}

// Pattern is a 7-bit segment set written abcdefg, a being bit 6.
type Pattern uint8

// Glyph patterns. Error is shown for anything outside 0-9.
const (
	Zero  Pattern = 0b1111110
	One   Pattern = 0b0110000
	Two   Pattern = 0b1101101
	Three Pattern = 0b1111001
	Four  Pattern = 0b0110011
	Five  Pattern = 0b1011011
	Six   Pattern = 0b0011111
	Seven Pattern = 0b1110000
	Eight Pattern = 0b1111111
	Nine  Pattern = 0b1110011
	Error Pattern = 0b1001111
)

var digits = [10]Pattern{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

// Encode maps a single decimal digit to its pattern. Any value outside
// [0, 9] yields the Error glyph.
func Encode(n int) Pattern {
	if n < 0 || n >= len(digits) {
		return Error
	}
	return digits[n]
}

// Has reports whether segment s is lit.
func (p Pattern) Has(s Segment) bool {
	if s >= segmentCount {
		return false
	}
	return p&(1<<(segmentCount-1-s)) != 0
}

// String renders the pattern as its abcdefg bit string, e.g. "1111110".
func (p Pattern) String() string {
	var sb strings.Builder
	for s := SegA; s < segmentCount; s++ {
		if p.Has(s) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
