package bufqueue

import (
	"testing"

	"github.com/dewolff-html5/html5tok/zbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePeekNextPushFront(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("hello"))

	c, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 'h', c)

	c, ok = q.Next()
	require.True(t, ok)
	assert.Equal(t, 'h', c)

	q.PushFront(zbuf.StrBufFromString("H"))
	c, ok = q.Next()
	require.True(t, ok)
	assert.Equal(t, 'H', c, "unconsumed buffer must be read before the rest")
}

func TestQueuePopExceptFromZeroCopy(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("abc<def"))
	set := NewSmallCharSet('<', '&')

	res, ok := q.PopExceptFrom(set)
	require.True(t, ok)
	assert.False(t, res.FromSet)
	assert.Equal(t, "abc", res.Block.String())

	res, ok = q.PopExceptFrom(set)
	require.True(t, ok)
	assert.True(t, res.FromSet)
	assert.Equal(t, '<', res.Char)
}

func TestQueuePopExceptFromFirstCharInSet(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("<abc"))
	res, ok := q.PopExceptFrom(NewSmallCharSet('<'))
	require.True(t, ok)
	assert.True(t, res.FromSet)
	assert.Equal(t, '<', res.Char)
}

func TestQueueEatMatchAcrossBuffers(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("DOC"))
	q.PushBack(zbuf.StrBufFromString("TYPE html>"))

	matched, decided := q.Eat("doctype", AsciiCaseInsensitiveEq)
	require.True(t, decided)
	assert.True(t, matched)

	c, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, ' ', c, "the matched prefix must be fully consumed")
}

func TestQueueEatMismatch(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("hello"))
	matched, decided := q.Eat("world", ByteExactEq)
	assert.True(t, decided)
	assert.False(t, matched)

	c, _ := q.Peek()
	assert.Equal(t, 'h', c, "a mismatch must not consume anything")
}

func TestQueueEatNeedsMoreInput(t *testing.T) {
	q := New()
	q.PushBack(zbuf.StrBufFromString("DOC"))
	_, decided := q.Eat("doctype", AsciiCaseInsensitiveEq)
	assert.False(t, decided, "must report 'need more input' rather than a decision")
}
