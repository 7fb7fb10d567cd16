// Package word implements the single-limb arithmetic primitives that every
// multi-word kernel in bigi is built from. A Word is the fixed-width unsigned
// machine integer used as one limb of a UBig/IBig buffer.
package word

import "math/bits"

// Word is the fundamental limb type. All slice kernels and radix tables are
// parameterized by this single choice of width.
type Word = uint64

// SignedWord is the same-width signed sibling of Word, used to propagate a
// carry across a signed multiply-accumulate.
type SignedWord = int64

// Bits is the width of a Word in bits.
const Bits = 64

// Max is the largest representable Word.
const Max = ^Word(0)

// AddWithCarry returns a+b+carryIn as a (sum, carryOut) pair, where carryOut
// is 1 iff the addition overflowed a Word.
func AddWithCarry(a, b, carryIn Word) (sum, carryOut Word) {
	s, c := bits.Add64(a, b, carryIn)
	return s, c
}

// SubWithBorrow returns a-b-borrowIn as a (diff, borrowOut) pair, where
// borrowOut is 1 iff a < b+borrowIn.
func SubWithBorrow(a, b, borrowIn Word) (diff, borrowOut Word) {
	d, bo := bits.Sub64(a, b, borrowIn)
	return d, bo
}

// MulAddCarry computes a*b + c + d as a double-word product and returns it
// split into (low, high). It is the inner step of the multiply-word kernel:
// expressing the multiply-accumulate as one primitive keeps that loop
// straight-line and lets it be backed by a platform intrinsic without
// leaking the intrinsic into callers.
func MulAddCarry(a, b, c, d Word) (low, high Word) {
	hi, lo := bits.Mul64(a, b)
	var carry Word
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	lo, carry = bits.Add64(lo, d, 0)
	hi += carry
	return lo, hi
}
