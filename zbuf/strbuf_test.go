package zbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrBufPopFrontChar(t *testing.T) {
	s := StrBufFromString("héllo")
	r := s.PopFrontChar()
	assert.Equal(t, 'h', r)
	r = s.PopFrontChar()
	assert.Equal(t, 'é', r, "must decode the two-byte rune, not split it")
	assert.Equal(t, "llo", s.String())
}

func TestStrBufSubtendrilZeroCopy(t *testing.T) {
	s := StrBufFromString("this string is deliberately longer than the inline capacity")
	sub := s.SubtendrilBytes(0, 4)
	assert.Equal(t, "this", sub.String())
}

func TestStrBufPanicsOffCharBoundary(t *testing.T) {
	s := StrBufFromString("héllo")
	assert.Panics(t, func() { s.PopFrontBytes(2) }, "splitting inside the 2-byte é must panic")
}
