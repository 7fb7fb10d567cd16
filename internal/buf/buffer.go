// Package buf implements Buffer, the growable word array backing a Large
// UBig. It owns a single heap allocation and applies a compaction policy so
// that small growth or shrinkage near an expected final length does not
// reallocate.
package buf

import "github.com/gtank/bigi/internal/word"

// Buffer owns a heap allocation of Words. It is exclusively owned by its
// holder: there is no shared mutability anywhere in this package, and
// cloning always deep-copies words.
type Buffer struct {
	words []word.Word
}

// Allocate returns an empty Buffer whose capacity is big enough that pushing
// up to n words will not reallocate, plus headroom for small overshoot.
//
// capacity = n + ceil(n/8) + 2
func Allocate(n int) *Buffer {
	return &Buffer{words: make([]word.Word, 0, allocCapacity(n))}
}

func allocCapacity(n int) int {
	return n + ceilDiv(n, 8) + 2
}

// compactBound is the capacity a Buffer of the given length should settle at
// after Shrink: len + max(2, ceil(len/8)).
func compactBound(length int) int {
	headroom := ceilDiv(length, 8)
	if headroom < 2 {
		headroom = 2
	}
	return length + headroom
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Len returns the current number of words.
func (b *Buffer) Len() int { return len(b.words) }

// Cap returns the current capacity in words.
func (b *Buffer) Cap() int { return cap(b.words) }

// At returns the word at index i.
func (b *Buffer) At(i int) word.Word { return b.words[i] }

// Set overwrites the word at index i.
func (b *Buffer) Set(i int, w word.Word) { b.words[i] = w }

// Push appends a word, growing within the existing Go slice capacity when
// possible.
func (b *Buffer) Push(w word.Word) { b.words = append(b.words, w) }

// Pop removes and returns the last word. It panics if the Buffer is empty,
// the same programmer-error contract the rest of the package uses for
// precondition violations.
func (b *Buffer) Pop() word.Word {
	n := len(b.words) - 1
	w := b.words[n]
	b.words = b.words[:n]
	return w
}

// Last returns the last word and true, or 0 and false if the Buffer is empty.
func (b *Buffer) Last() (word.Word, bool) {
	if len(b.words) == 0 {
		return 0, false
	}
	return b.words[len(b.words)-1], true
}

// Words exposes the current contents for read-only low-to-high traversal by
// collaborators (the formatter, arithmetic wrappers).
func (b *Buffer) Words() []word.Word { return b.words }

// Shrink reallocates to the compact-bound capacity for the current length if
// the current capacity exceeds len + ceil(len/4) + 4. A buffer produced by
// Allocate(n) whose final length lands within roughly [0.9n, 1.125n] stays
// under that threshold and will not reallocate here.
func (b *Buffer) Shrink() {
	n := len(b.words)
	if cap(b.words) <= n+ceilDiv(n, 4)+4 {
		return
	}
	fresh := make([]word.Word, n, compactBound(n))
	copy(fresh, b.words)
	b.words = fresh
}

// resizeSlack bounds how far a destination's existing capacity may sit from
// the source's compact bound before ResizingCloneFrom reallocates instead of
// reusing the buffer.
const resizeSlack = 2

// ResizingCloneFrom deep-copies src's words into b, reusing b's existing
// allocation when its capacity is close to compact-bound(src.Len()), and
// reallocating via Allocate(src.Len()) otherwise.
func (b *Buffer) ResizingCloneFrom(src *Buffer) {
	bound := compactBound(src.Len())
	if cap(b.words) < bound-resizeSlack || cap(b.words) > bound+resizeSlack {
		b.words = make([]word.Word, src.Len(), allocCapacity(src.Len()))
	} else {
		b.words = b.words[:src.Len()]
	}
	copy(b.words, src.words)
}

// Clone returns a deep copy of b, preserving its capacity.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{words: make([]word.Word, len(b.words), cap(b.words))}
	copy(out.words, b.words)
	return out
}
