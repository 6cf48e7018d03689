package zbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesBufInlineAndHeap(t *testing.T) {
	small := FromSlice([]byte("hello"))
	assert.Equal(t, 5, small.Len())
	assert.Equal(t, []byte("hello"), small.Bytes())

	big := FromSlice([]byte("this string is deliberately longer than the inline capacity"))
	assert.Equal(t, kindHeap, big.k)
	assert.Equal(t, "this string is deliberately longer than the inline capacity", string(big.Bytes()))
}

func TestBytesBufCOWCorrectness(t *testing.T) {
	a := FromSlice([]byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	original := append([]byte(nil), a.Bytes()...)
	b := a.Clone()

	a.PushSlice([]byte("XYZ"))

	assert.Equal(t, original, b.Bytes(), "clone must be unaffected by mutation of the original")
	assert.Equal(t, append(original, 'X', 'Y', 'Z'), a.Bytes())
}

func TestBytesBufPopFrontPopBack(t *testing.T) {
	buf := FromSlice([]byte("hello world"))
	buf.PopFront(6)
	assert.Equal(t, []byte("world"), buf.Bytes())

	buf2 := FromSlice([]byte("hello"))
	buf2.PopBack(2)
	assert.Equal(t, []byte("hel"), buf2.Bytes())
}

func TestBytesBufSplitOff(t *testing.T) {
	buf := FromSlice([]byte("hello"))
	tail := buf.SplitOff(2)
	assert.Equal(t, []byte("he"), buf.Bytes())
	assert.Equal(t, []byte("llo"), tail.Bytes())
}

func TestBytesBufPushBufCoalescesZeroCopy(t *testing.T) {
	full := FromSlice([]byte("abcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabc"))
	tail := full.SplitOff(50)
	assert.Equal(t, 50, full.Len())
	assert.Equal(t, 10, tail.Len())
	full.PushBuf(&tail)
	assert.Equal(t, "abcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabcabc", string(full.Bytes()))
}

func TestBytesBufPanicsOnOutOfBounds(t *testing.T) {
	buf := FromSlice([]byte("hi"))
	assert.Panics(t, func() { buf.PopFront(5) })
	assert.Panics(t, func() { buf.SplitOff(99) })
}

func TestBytesBufReserveExponentialGrowth(t *testing.T) {
	buf := FromSlice([]byte("abc"))
	before := buf.Capacity()
	buf.Reserve(1000)
	assert.Greater(t, buf.Capacity(), before)
	assert.GreaterOrEqual(t, buf.Capacity(), 1003)
}
