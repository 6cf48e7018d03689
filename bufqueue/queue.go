// Package bufqueue implements the ordered sequence of zbuf.StrBuf buffers
// that the tokenizer consumes as a single character stream: peek/next/
// unconsume, the SmallCharSet bulk-scan fast path, and the ASCII
// case-insensitive cross-buffer prefix matcher.
package bufqueue

import "github.com/dewolff-html5/html5tok/zbuf"

// SetResult is the result of PopExceptFrom: either a single character drawn
// from the set, or a run of characters none of which are in the set.
type SetResult struct {
	// FromSet is true when Char holds a set member; otherwise Block holds
	// the not-from-set run.
	FromSet bool
	Char    rune
	Block   zbuf.StrBuf
}

// Queue is a FIFO of non-empty zbuf.StrBufs whose logical contents equal the
// concatenation of its elements.
type Queue struct {
	buffers []zbuf.StrBuf
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{buffers: make([]zbuf.StrBuf, 0, 16)}
}

// IsEmpty reports whether the queue holds no buffers.
func (q *Queue) IsEmpty() bool { return len(q.buffers) == 0 }

// PushFront adds buf to the front of the queue, for unconsume. Empty buffers
// are rejected (dropped) to preserve the "all buffers non-empty" invariant.
func (q *Queue) PushFront(buf zbuf.StrBuf) {
	if buf.IsEmpty() {
		return
	}
	q.buffers = append(q.buffers, zbuf.StrBuf{})
	copy(q.buffers[1:], q.buffers)
	q.buffers[0] = buf
}

// PushBack adds buf to the back of the queue, for producer append. Empty
// buffers are rejected.
func (q *Queue) PushBack(buf zbuf.StrBuf) {
	if buf.IsEmpty() {
		return
	}
	q.buffers = append(q.buffers, buf)
}

// PopFront removes and returns the buffer at the front of the queue, or
// false if the queue is empty.
func (q *Queue) PopFront() (zbuf.StrBuf, bool) {
	if q.IsEmpty() {
		return zbuf.StrBuf{}, false
	}
	buf := q.buffers[0]
	q.buffers = q.buffers[1:]
	return buf, true
}

// Peek returns the next available character without consuming it, or false
// if the queue is currently empty.
func (q *Queue) Peek() (rune, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.buffers[0].FirstChar(), true
}

// Next removes and returns the next available character, or false if the
// queue is currently empty. A buffer emptied by this call is popped.
func (q *Queue) Next() (rune, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	c := q.buffers[0].PopFrontChar()
	if q.buffers[0].IsEmpty() {
		q.buffers = q.buffers[1:]
	}
	return c, true
}

// PopExceptFrom pops either a single character from set, or the longest
// prefix of the front buffer whose bytes are not in set (returned without
// copying, via an O(1) subtendril of the front buffer's allocation). It
// reports false ("need more input") when the queue is currently empty.
func (q *Queue) PopExceptFrom(set SmallCharSet) (SetResult, bool) {
	if q.IsEmpty() {
		return SetResult{}, false
	}
	front := &q.buffers[0]
	n := set.nonMemberPrefixLen(front.Bytes())
	var result SetResult
	if n > 0 {
		result = SetResult{FromSet: false, Block: front.SubtendrilBytes(0, n)}
		front.PopFrontBytes(n)
	} else {
		result = SetResult{FromSet: true, Char: front.PopFrontChar()}
	}
	if front.IsEmpty() {
		q.buffers = q.buffers[1:]
	}
	return result, true
}

// ByteEq is the per-byte comparator Eat uses; AsciiCaseInsensitiveEq ignores
// ASCII case, ByteExactEq requires an exact match.
type ByteEq func(input, pattern byte) bool

// ByteExactEq is a ByteEq requiring an exact byte match.
func ByteExactEq(input, pattern byte) bool { return input == pattern }

// AsciiCaseInsensitiveEq is a ByteEq that folds ASCII letters before
// comparing, matching the tokenizer's case-insensitive keyword matches
// (DOCTYPE, PUBLIC, SYSTEM, raw-text end tag names, …).
func AsciiCaseInsensitiveEq(input, pattern byte) bool {
	return asciiLower(input) == asciiLower(pattern)
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Eat advances across buffer boundaries attempting to match pat (which must
// be ASCII and non-empty) byte-by-byte using eq. It returns (true, true) on
// a full match (committing the consumption), (false, true) on a definite
// mismatch (nothing is consumed), and (false, false) when the queue runs out
// of input before a decision can be made — the caller must stash whatever it
// already knows and retry once more input has arrived.
func (q *Queue) Eat(pat string, eq ByteEq) (matched bool, decided bool) {
	if q.IsEmpty() {
		return false, false
	}
	buffersExhausted := 0
	consumedFromLast := 0
	for i := 0; i < len(pat); i++ {
		if buffersExhausted >= len(q.buffers) {
			return false, false
		}
		buf := &q.buffers[buffersExhausted]
		if !eq(buf.Bytes()[consumedFromLast], pat[i]) {
			return false, true
		}
		consumedFromLast++
		if consumedFromLast >= buf.Len() {
			buffersExhausted++
			consumedFromLast = 0
		}
	}

	for i := 0; i < buffersExhausted; i++ {
		q.buffers = q.buffers[1:]
	}
	if consumedFromLast > 0 {
		q.buffers[0].PopFrontBytes(consumedFromLast)
	}
	return true, true
}
