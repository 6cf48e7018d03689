package bufqueue

import "github.com/dewolff-html5/html5tok/databulk"

// SmallCharSet is a bitmask over the first 64 ASCII code points, used by
// PopExceptFrom to identify the "interesting" characters a bulk scan should
// stop at (e.g. '<', '&', '\r', '\0', '\n' for the tokenizer's Data state).
type SmallCharSet uint64

// NewSmallCharSet builds a SmallCharSet containing the given bytes. Every
// byte must be below 64; higher bytes can never be set and are simply never
// matched by Contains.
func NewSmallCharSet(bytes ...byte) SmallCharSet {
	var s SmallCharSet
	for _, b := range bytes {
		if b < 64 {
			s |= 1 << uint(b)
		}
	}
	return s
}

// Contains reports whether b is a member of the set.
func (s SmallCharSet) Contains(b byte) bool {
	return b < 64 && s&(1<<uint(b)) != 0
}

// nonMemberPrefixLen returns the length of the longest prefix of b whose
// bytes are all outside the set. The scan itself, including the SIMD-gated
// bulk fast path used by the tokenizer's Data state, lives in package
// databulk; this is its only caller.
func (s SmallCharSet) nonMemberPrefixLen(b []byte) int {
	return databulk.ScanNonMembers(b, uint64(s))
}
