package entity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed runs name (without the leading '&') through a fresh State and
// returns the match, if any.
func feed(name string) (MatchResult, bool) {
	s := NewState()
	for i := 0; i < len(name); i++ {
		if !s.FeedCharacter(name[i]) {
			return s.FinishMatch()
		}
	}
	return s.NotifyEndOfFile()
}

func TestOnlineMatchesKnownReferences(t *testing.T) {
	cases := []struct {
		name     string
		expanded [2]rune
		semi     bool
	}{
		{"amp;", [2]rune{'&', 0}, true},
		{"amp", [2]rune{'&', 0}, false},
		{"notin;", [2]rune{0x2209, 0}, true},
		{"not", [2]rune{0x00AC, 0}, false},
		{"lt;", [2]rune{'<', 0}, true},
		{"quot;", [2]rune{'"', 0}, true},
	}
	for _, c := range cases {
		m, ok := feed(c.name)
		require.True(t, ok, "expected %q to match", c.name)
		assert.Equal(t, c.expanded, m.Scalars, "name %q", c.name)
		assert.Equal(t, c.semi, m.EndsWithSemicolon, "name %q", c.name)
	}
}

func TestOnlineLongestMatchWins(t *testing.T) {
	// "notit;" is not itself a valid reference, but its prefix "not" is a
	// legacy no-semicolon reference. The matcher must report that prefix
	// and tell the caller to push back the one character ("i") it accepted
	// past the match; the dead-end "t" is not consumed and ";" is never fed.
	m, ok := feed("notit;")
	require.True(t, ok)
	assert.Equal(t, [2]rune{0x00AC, 0}, m.Scalars)
	assert.Equal(t, 3, m.Length)
	assert.Equal(t, 1, m.Reconsume)
}

func TestOnlineNoMatch(t *testing.T) {
	_, ok := feed("zzzzz;")
	assert.False(t, ok)
}

func TestOnlineTwoScalarExpansion(t *testing.T) {
	m, ok := feed("acE;")
	require.True(t, ok)
	assert.Equal(t, 2, m.ScalarCount)
	assert.Equal(t, rune(0x223E), m.Scalars[0])
	assert.Equal(t, rune(0x0333), m.Scalars[1])
}

// TestOnlineOfflineHashAgreement is the load-bearing property of the whole
// package: the minimal perfect hash the online Automaton.Step accumulates,
// one byte at a time, must equal the offline Builder.GetUniqueIndex result
// computed over the whole name at once. If these ever disagreed,
// entityExpansions would be indexed by the wrong slot.
func TestOnlineOfflineHashAgreement(t *testing.T) {
	names := make([]string, 0, len(entityTable))
	for name := range entityTable {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewBuilder()
	for _, name := range names {
		b.Insert(name)
	}
	b.Finish()

	for _, name := range names {
		offline, ok := b.GetUniqueIndex(name)
		require.True(t, ok)

		s := NewState()
		for i := 0; i < len(name); i++ {
			require.True(t, s.FeedCharacter(name[i]), "name %q", name)
		}
		m, ok := s.NotifyEndOfFile()
		require.True(t, ok)
		assert.Equal(t, len(name), m.Length)
		assert.Equal(t, entityTable[name], m.Scalars)
		assert.Equal(t, offline, s.matchHash, "name %q", name)
	}
}

func TestResolveNumericClampsAndSubstitutes(t *testing.T) {
	r, isErr := ResolveNumeric(0)
	assert.Equal(t, rune(0xFFFD), r)
	assert.True(t, isErr)

	r, isErr = ResolveNumeric(0x110000)
	assert.Equal(t, rune(0xFFFD), r)
	assert.True(t, isErr)

	r, isErr = ResolveNumeric(0xD800)
	assert.Equal(t, rune(0xFFFD), r)
	assert.True(t, isErr)

	r, isErr = ResolveNumeric(0x80)
	assert.Equal(t, rune(0x20AC), r)
	assert.True(t, isErr)

	r, isErr = ResolveNumeric(0x41)
	assert.Equal(t, rune('A'), r)
	assert.False(t, isErr)
}

func TestDigitValue(t *testing.T) {
	v, ok := DigitValue('7', 10)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = DigitValue('F', 16)
	require.True(t, ok)
	assert.Equal(t, 15, v)

	_, ok = DigitValue('g', 16)
	assert.False(t, ok)

	_, ok = DigitValue('9', 8)
	assert.False(t, ok)
}
