package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsUnsortedInsert(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover(), "expected a panic on out-of-order insert")
	}()
	b := NewBuilder()
	b.Insert("banana")
	b.Insert("apple")
}

func TestBuilderMinimizesSharedSuffixes(t *testing.T) {
	// "cat" and "rat" share the terminal suffix node; the minimizer should
	// fold them onto one physical node rather than keeping two.
	b := NewBuilder()
	b.Insert("cat")
	b.Insert("rat")
	b.Finish()

	catIdx, ok := b.GetUniqueIndex("cat")
	require.True(t, ok)
	ratIdx, ok := b.GetUniqueIndex("rat")
	require.True(t, ok)
	assert.NotEqual(t, catIdx, ratIdx, "distinct words must still hash distinctly")
}

func TestBuilderRejectsUnknownWord(t *testing.T) {
	b := NewBuilder()
	b.Insert("amp")
	b.Insert("amp;")
	b.Finish()

	_, ok := b.GetUniqueIndex("ampersand")
	assert.False(t, ok)
}

func TestBuilderPerfectHashIsDense(t *testing.T) {
	words := []string{"amp", "amp;", "gt", "gt;", "lt", "lt;", "notin;"}
	b := NewBuilder()
	for _, w := range words {
		b.Insert(w)
	}
	b.Finish()

	seen := make(map[int]bool)
	for _, w := range words {
		idx, ok := b.GetUniqueIndex(w)
		require.True(t, ok)
		assert.False(t, seen[idx], "index %d reused for %q", idx, w)
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(words))
	}
}
