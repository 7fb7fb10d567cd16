package arith

import "github.com/gtank/bigi/internal/word"

// Sign selects which direction AddSignedMul accumulates in.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

// ChunkLen splits the larger factor into chunks of [ChunkLen, 2*ChunkLen)
// words for cache locality. It is a tunable: correctness holds for any
// ChunkLen >= 1, but 1024 is where the corpus's own chunked-multiply
// ancestor settles for the working-set-vs-overhead tradeoff.
const ChunkLen = 1024

// MaxSmallerLen is the largest b.Len() AddSignedMul supports.
const MaxSmallerLen = ChunkLen

// AddSignedMul computes c += sign*a*b using the schoolbook method,
// chunking over the larger factor a for cache locality, and returns the
// signed carry at position len(c).
//
// Preconditions: len(a) >= len(b), len(c) == len(a)+len(b), and
// len(b) <= MaxSmallerLen. Violating any of these is a programmer error.
func AddSignedMul(c []word.Word, sign Sign, a, b []word.Word) word.SignedWord {
	if len(a) < len(b) || len(c) != len(a)+len(b) {
		panic("arith: AddSignedMul precondition violated")
	}
	if len(b) > MaxSmallerLen {
		panic("arith: AddSignedMul: b too long")
	}

	n := len(b)
	var carryN word.SignedWord

	for len(a) >= 2*ChunkLen {
		carryN = AddSignedWordInPlace(c[n:ChunkLen+n], carryN)
		carryN += addSignedMulChunk(c[:ChunkLen+n], sign, a[:ChunkLen], b)
		a = a[ChunkLen:]
		c = c[ChunkLen:]
	}

	carry := AddSignedWordInPlace(c[n:], carryN)
	carry += addSignedMulChunk(c, sign, a, b)
	return carry
}

// addSignedMulChunk computes c += sign*a*b for a single chunk, where
// len(a) < 2*ChunkLen. Returns the signed carry at position len(c).
func addSignedMulChunk(c []word.Word, sign Sign, a, b []word.Word) word.SignedWord {
	switch sign {
	case Positive:
		return word.SignedWord(addMulChunk(c, a, b))
	case Negative:
		return -word.SignedWord(subMulChunk(c, a, b))
	default:
		panic("arith: invalid Sign")
	}
}

// addMulChunk computes c += a*b for a single chunk and returns the carry
// escaping past position len(c). Row i (the term b[i]*a, shifted i words)
// is written directly into c[i:i+len(a)] by AddMulWordInPlace; the Word it
// returns belongs at c[i+len(a)], one slot outside that window, so it is
// rippled into the remaining tail c[i+len(a):] rather than dropped. That
// tail is exactly where row i+1's own window ends, so by the time row i+1
// reads that slot it already holds row i's contribution. Only a ripple
// that runs off the true end of c (past len(c)-1) produces a nonzero
// result here, and in the overwhelmingly common case at most one row's
// ripple does so.
func addMulChunk(c, a, b []word.Word) word.Word {
	var overflow word.Word
	for i, m := range b {
		rowCarry := AddMulWordInPlace(c[i:i+len(a)], m, a)
		overflow += AddWordInPlace(c[i+len(a):], rowCarry)
	}
	return overflow
}

// subMulChunk computes c -= a*b for a single chunk, analogous to
// addMulChunk with borrows in place of carries.
func subMulChunk(c, a, b []word.Word) word.Word {
	var overflow word.Word
	for i, m := range b {
		rowBorrow := SubMulWordInPlace(c[i:i+len(a)], m, a)
		overflow += SubWordInPlace(c[i+len(a):], rowBorrow)
	}
	return overflow
}
