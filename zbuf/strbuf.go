package zbuf

import "unicode/utf8"

// StrBuf is a BytesBuf whose contents are guaranteed to be well-formed
// UTF-8. Every constructor and mutating operation on StrBuf preserves that
// invariant; operations that would otherwise land off a character boundary
// panic instead.
type StrBuf struct {
	b BytesBuf
}

// StrBufFromString copies s into a new StrBuf. s is assumed to already be
// valid UTF-8, as produced by the decoder feeding this package;
// StrBufFromString does not re-validate it.
func StrBufFromString(s string) StrBuf {
	return StrBuf{b: FromSlice([]byte(s))}
}

// Len returns the length of the buffer in bytes.
func (s *StrBuf) Len() int { return s.b.Len() }

// IsEmpty reports whether the buffer is empty.
func (s *StrBuf) IsEmpty() bool { return s.b.IsEmpty() }

// Bytes returns the buffer's UTF-8 contents. The returned slice aliases the
// buffer's storage.
func (s *StrBuf) Bytes() []byte { return s.b.Bytes() }

// String returns a copy of the buffer's contents as a string.
func (s *StrBuf) String() string { return string(s.b.Bytes()) }

// Clone returns a cheap copy of s.
func (s StrBuf) Clone() StrBuf { return StrBuf{b: s.b.Clone()} }

// Release must be called when a cloned StrBuf is discarded; see
// BytesBuf.Release.
func (s *StrBuf) Release() { s.b.Release() }

// PushString appends t onto the end of the buffer.
func (s *StrBuf) PushString(t string) { s.b.PushSlice([]byte(t)) }

// PushRune appends the UTF-8 encoding of r onto the end of the buffer.
func (s *StrBuf) PushRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	s.b.PushSlice(buf[:n])
}

// PushBuf appends other onto the end of the buffer, per BytesBuf.PushBuf:
// an O(1), allocation-free window extension when s is empty or the two
// buffers share a contiguous heap allocation, otherwise a copy. Callers that
// obtained other from Clone/Subtendril still owe it its own Release.
func (s *StrBuf) PushBuf(other *StrBuf) { s.b.PushBuf(&other.b) }

// Reset empties the buffer, releasing any shared allocation it held.
func (s *StrBuf) Reset() {
	s.b.Release()
	s.b = BytesBuf{}
}

// PopFrontChar removes and returns the first rune of the buffer.
//
// It panics if the buffer is empty.
func (s *StrBuf) PopFrontChar() rune {
	r, n := utf8.DecodeRune(s.Bytes())
	if n == 0 {
		panic("zbuf: pop_front_char: empty StrBuf")
	}
	s.b.PopFront(n)
	return r
}

// FirstChar returns the first rune of the buffer without removing it.
//
// It panics if the buffer is empty.
func (s *StrBuf) FirstChar() rune {
	r, n := utf8.DecodeRune(s.Bytes())
	if n == 0 {
		panic("zbuf: first_char: empty StrBuf")
	}
	return r
}

// SubtendrilBytes returns a new StrBuf sharing the same allocation as s,
// covering the byte range [start, start+n). It panics if that range does
// not land on UTF-8 character boundaries.
func (s *StrBuf) SubtendrilBytes(start, n int) StrBuf {
	b := s.Bytes()
	if start < len(b) && !utf8.RuneStart(b[start]) {
		panic("zbuf: subtendril: start is not a char boundary")
	}
	end := start + n
	if end < len(b) && !utf8.RuneStart(b[end]) {
		panic("zbuf: subtendril: end is not a char boundary")
	}
	return StrBuf{b: s.b.Subtendril(start, n)}
}

// PopFrontBytes removes the first n bytes from the buffer.
//
// It panics if n does not land on a UTF-8 character boundary.
func (s *StrBuf) PopFrontBytes(n int) {
	b := s.Bytes()
	if n < len(b) && !utf8.RuneStart(b[n]) {
		panic("zbuf: pop_front: not a char boundary")
	}
	s.b.PopFront(n)
}
