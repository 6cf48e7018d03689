// Package zbuf implements the shared, reference-counted, copy-on-write byte
// buffer that the rest of this module treats as its zero-copy substrate:
// BytesBuf (this file) and StrBuf (strbuf.go), which is a BytesBuf with a
// UTF-8 well-formedness invariant layered on top.
package zbuf

import "fmt"

// MaxLen is the largest length a BytesBuf may ever reach. Capacity requests
// beyond it panic, matching the original's u32-width length fields.
const MaxLen = 1 << 30

// inlineCapacity is how many bytes fit directly inside a BytesBuf value
// without a heap allocation, sized to what the struct layout below actually
// has room for.
const inlineCapacity = 23

type kind uint8

const (
	kindInline kind = iota
	kindHeap
)

// heapData is the reference-counted allocation shared by owned and shared
// BytesBuf values. refcount == 1 means this BytesBuf is the sole owner and
// may mutate data in place; refcount > 1 means at least one other BytesBuf
// shares the allocation and any mutation must copy-on-write first.
type heapData struct {
	refcount int32
	data     []byte // len(data) == capacity of the allocation
}

// BytesBuf is a byte sequence of length up to MaxLen, held either inline (no
// allocation, for small buffers) or in a shared, refcounted heap allocation
// with a (start, len) window for O(1), allocation-free slicing.
type BytesBuf struct {
	k     kind
	start uint32
	len   uint32
	inln  [inlineCapacity]byte
	heap  *heapData
}

// New returns a new, empty, inline buffer.
func New() BytesBuf {
	return BytesBuf{k: kindInline}
}

// FromSlice copies b into a new buffer.
func FromSlice(b []byte) BytesBuf {
	var buf BytesBuf
	if len(b) <= inlineCapacity {
		buf = BytesBuf{k: kindInline, len: uint32(len(b))}
		copy(buf.inln[:], b)
		return buf
	}
	buf = WithCapacity(len(b))
	buf.PushSlice(b)
	return buf
}

// WithCapacity returns a new buffer with room for at least n bytes without
// reallocating.
//
// It panics if n exceeds MaxLen.
func WithCapacity(n int) BytesBuf {
	if n <= inlineCapacity {
		return New()
	}
	if n > MaxLen {
		panic(fmt.Sprintf("zbuf: requested capacity %d exceeds MaxLen", n))
	}
	return BytesBuf{k: kindHeap, heap: &heapData{refcount: 1, data: make([]byte, 0, nextPow2(n))}}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Len returns the number of bytes in the buffer.
func (b *BytesBuf) Len() int { return int(b.len) }

// IsEmpty reports whether the buffer is empty.
func (b *BytesBuf) IsEmpty() bool { return b.len == 0 }

// Capacity returns how many bytes the buffer can hold before Reserve would
// need to reallocate. For a shared heap buffer this is capped at the
// buffer's own length: growing in place would corrupt sibling buffers, so
// any further growth must copy-on-write regardless of the backing
// allocation's remaining room.
func (b *BytesBuf) Capacity() int {
	if b.k == kindInline {
		return inlineCapacity
	}
	if b.heap.refcount > 1 {
		return int(b.len)
	}
	return cap(b.heap.data) - int(b.start)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and must not be retained across a mutating call.
func (b *BytesBuf) Bytes() []byte {
	if b.k == kindInline {
		return b.inln[:b.len]
	}
	return b.heap.data[b.start : b.start+b.len]
}

// isShared reports whether the backing heap allocation has more than one
// owner. Inline buffers are never shared (they carry their data by value).
func (b *BytesBuf) isShared() bool {
	return b.k == kindHeap && b.heap.refcount > 1
}

// Clone returns a cheap copy of b: inline buffers are copied by value, heap
// buffers bump the shared allocation's refcount.
func (b BytesBuf) Clone() BytesBuf {
	if b.k == kindHeap {
		b.heap.refcount++
	}
	return b
}

// Release must be called when a BytesBuf obtained via Clone (or otherwise
// sharing a heap allocation) is discarded, so the refcount can reach zero
// and the allocation can be reclaimed. Buffers produced by New/FromSlice/
// WithCapacity and never cloned do not need it; it is a no-op for inline
// buffers.
func (b *BytesBuf) Release() {
	if b.k != kindHeap {
		return
	}
	b.heap.refcount--
	if b.heap.refcount < 0 {
		panic("zbuf: refcount underflow")
	}
	if b.heap.refcount == 0 {
		b.heap.data = nil // drop the last owner's reference, let GC reclaim
	}
}

// cow ensures the buffer is uniquely owned and has capacity for at least
// extra additional bytes, copying the live window into a fresh allocation
// first if the allocation is shared or the tail capacity is insufficient.
func (b *BytesBuf) cow(extra int) {
	needed := int(b.len) + extra
	if needed > MaxLen {
		panic(fmt.Sprintf("zbuf: buffer would exceed MaxLen (%d)", MaxLen))
	}
	if b.k == kindInline {
		if needed <= inlineCapacity {
			return
		}
		fresh := WithCapacity(needed)
		fresh.PushSlice(b.inln[:b.len])
		*b = fresh
		return
	}
	if b.heap.refcount == 1 && needed <= cap(b.heap.data)-int(b.start) {
		return
	}
	fresh := WithCapacity(needed)
	fresh.PushSlice(b.Bytes())
	b.Release()
	*b = fresh
}

// Reserve ensures the buffer has capacity for at least extra additional
// bytes beyond its current length, triggering copy-on-write when the
// allocation is shared or the existing tail capacity is insufficient.
// Growth, when it happens, is to the next power of two.
func (b *BytesBuf) Reserve(extra int) { b.cow(extra) }

// WriteToUninitializedTail grants f a mutable view of the buffer's spare
// capacity past its current length and commits however many bytes f reports
// having initialized. f must not read from the slice it is given: on a
// freshly grown allocation those bytes are genuinely uninitialized memory
// from Go's perspective (though never unsafe to read, since Go slices are
// always zeroed on allocation — the contract exists to mirror the original
// API and to keep callers from depending on stale tail contents after a
// PopBack/Truncate).
func (b *BytesBuf) WriteToUninitializedTail(f func(tail []byte) (written int)) {
	if b.k == kindInline {
		tail := b.inln[b.len:]
		n := f(tail)
		if n < 0 || n > len(tail) {
			panic("zbuf: write_to_uninitialized_tail: bad written count")
		}
		b.len += uint32(n)
		return
	}
	if b.heap.refcount > 1 {
		b.cow(0)
	}
	end := int(b.start) + int(b.len)
	tail := b.heap.data[end:cap(b.heap.data)]
	n := f(tail)
	if n < 0 || n > len(tail) {
		panic("zbuf: write_to_uninitialized_tail: bad written count")
	}
	b.heap.data = b.heap.data[:end+n]
	b.len += uint32(n)
}

// PushSlice appends s onto the end of the buffer, copying existing data if
// the buffer is shared or its tail capacity is insufficient.
func (b *BytesBuf) PushSlice(s []byte) {
	b.Reserve(len(s))
	b.WriteToUninitializedTail(func(tail []byte) int {
		return copy(tail, s)
	})
}

// PushBuf appends other onto the end of the buffer. When both buffers share
// the same heap allocation and their windows are contiguous, this is a pure
// O(1) window-extension with no copy (zero-copy coalescing); otherwise it
// falls back to PushSlice.
func (b *BytesBuf) PushBuf(other *BytesBuf) {
	if b.IsEmpty() {
		*b = other.Clone()
		return
	}
	if b.k == kindHeap && other.k == kindHeap && b.heap == other.heap {
		if b.start+b.len == other.start {
			b.len += other.len
			return
		}
	}
	b.PushSlice(other.Bytes())
}

// PopFront removes n bytes from the front of the buffer. For a heap buffer
// this only adjusts the window, in O(1) and without copying; for an inline
// buffer the remaining bytes are repacked to the start of the value.
//
// It panics if n is out of bounds.
func (b *BytesBuf) PopFront(n int) {
	if n < 0 || n > int(b.len) {
		panic(fmt.Sprintf("zbuf: pop_front(%d): only %d bytes available", n, b.len))
	}
	if b.k == kindInline {
		copy(b.inln[:], b.inln[n:b.len])
		b.len -= uint32(n)
		return
	}
	b.start += uint32(n)
	b.len -= uint32(n)
}

// PopBack removes n bytes from the back of the buffer.
//
// It panics if n is out of bounds.
func (b *BytesBuf) PopBack(n int) {
	if n < 0 || n > int(b.len) {
		panic(fmt.Sprintf("zbuf: pop_back(%d): only %d bytes available", n, b.len))
	}
	b.Truncate(int(b.len) - n)
}

// Truncate shortens the buffer to newLen. It has no effect if newLen is
// greater than or equal to the current length.
func (b *BytesBuf) Truncate(newLen int) {
	if newLen < 0 {
		panic("zbuf: truncate: negative length")
	}
	if newLen < int(b.len) {
		b.len = uint32(newLen)
	}
}

// Clear empties the buffer without necessarily releasing its capacity.
func (b *BytesBuf) Clear() { b.Truncate(0) }

// SplitOff splits the buffer at index at: self keeps bytes [0, at) and the
// returned buffer holds [at, len). For heap buffers both halves share the
// same allocation with disjoint windows, in O(1).
//
// It panics if at is out of bounds.
func (b *BytesBuf) SplitOff(at int) BytesBuf {
	if at < 0 || at > int(b.len) {
		panic(fmt.Sprintf("zbuf: split_off(%d): out of bounds (len=%d)", at, b.len))
	}
	var tail BytesBuf
	if b.k == kindHeap {
		tail = b.Clone()
		tail.start += uint32(at)
		tail.len -= uint32(at)
	} else {
		tail = FromSlice(b.inln[at:b.len])
	}
	b.Truncate(at)
	return tail
}

// Subtendril returns a new buffer sharing the same allocation as b (for
// heap buffers) covering the window [start, start+n) relative to b's own
// window start, without copying. This is the "subtendril" primitive used by
// bufqueue.PopExceptFrom to carve a prefix out of the front buffer at O(1).
//
// It panics if [start, start+n) is out of bounds.
func (b *BytesBuf) Subtendril(start, n int) BytesBuf {
	if start < 0 || n < 0 || start+n > int(b.len) {
		panic("zbuf: subtendril: out of bounds")
	}
	if b.k == kindInline {
		return FromSlice(b.inln[start : start+n])
	}
	sub := b.Clone()
	sub.start += uint32(start)
	sub.len = uint32(n)
	return sub
}
