package entity

// c1ReplacementTable implements the Windows-1252-derived substitution the
// HTML5 spec mandates for numeric references that land in the C1 control
// range (0x80-0x9F): these were never valid Unicode scalar values for those
// code points in practice, since every widely deployed browser inherited
// them from treating the reference's number as a Windows-1252 byte.
var c1ReplacementTable = map[uint32]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

// DigitValue reports the value of c as a digit in the given base (10 or
// 16), and whether c is a digit of that base at all.
func DigitValue(c byte, base int) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		v := int(c - '0')
		if v < base {
			return v, true
		}
	case base == 16 && 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case base == 16 && 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ResolveNumeric maps the accumulated number of a &#... or &#x... reference
// to the scalar value the tokenizer should emit, along with whether this
// reference is a parse error. It implements the WHATWG "numeric character
// reference end state" table: null and out-of-range references become
// U+FFFD, surrogate values become U+FFFD, C1 controls are remapped per
// c1ReplacementTable, and noncharacters/most other controls pass through
// unchanged but are still flagged as an error.
func ResolveNumeric(codepoint uint32) (rune, bool) {
	switch {
	case codepoint == 0:
		return 0xFFFD, true
	case codepoint > 0x10FFFF:
		return 0xFFFD, true
	case codepoint >= 0xD800 && codepoint <= 0xDFFF:
		return 0xFFFD, true
	}
	if r, ok := c1ReplacementTable[codepoint]; ok {
		return r, true
	}
	if isNoncharacter(codepoint) {
		return rune(codepoint), true
	}
	if isDisallowedControl(codepoint) {
		return rune(codepoint), true
	}
	return rune(codepoint), false
}

func isNoncharacter(cp uint32) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	switch cp & 0xFFFE {
	case 0xFFFE:
		return true
	}
	return false
}

// isDisallowedControl reports the handful of C0 control characters (beyond
// the C1 block already remapped above) that the spec still flags as a
// parse error even though their numeric value is kept as-is: 0x0D and every
// C0/C1 control except ASCII whitespace.
func isDisallowedControl(cp uint32) bool {
	if cp == 0x0D {
		return true
	}
	isWhitespace := cp == 0x09 || cp == 0x0A || cp == 0x0C || cp == 0x20
	if cp <= 0x1F && !isWhitespace {
		return true
	}
	if cp >= 0x7F && cp <= 0x9F && !isWhitespace {
		_, inC1Table := c1ReplacementTable[cp]
		return !inC1Table
	}
	return false
}
