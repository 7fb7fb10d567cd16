package arith

import "github.com/gtank/bigi/internal/word"

// AddMulWordInPlace computes c[:len(a)] += m*a and returns the final carry
// as a Word. It requires len(c) >= len(a) and never touches c beyond
// len(a); the caller is responsible for propagating the returned carry.
func AddMulWordInPlace(c []word.Word, m word.Word, a []word.Word) word.Word {
	if len(c) < len(a) {
		panic("arith: AddMulWordInPlace requires len(c) >= len(a)")
	}
	var carry word.Word
	for i, ai := range a {
		c[i], carry = word.MulAddCarry(m, ai, c[i], carry)
	}
	return carry
}

// SubMulWordInPlace computes c[:len(a)] -= m*a and returns the final
// borrow, analogous to AddMulWordInPlace.
func SubMulWordInPlace(c []word.Word, m word.Word, a []word.Word) word.Word {
	if len(c) < len(a) {
		panic("arith: SubMulWordInPlace requires len(c) >= len(a)")
	}
	var borrow word.Word
	for i, ai := range a {
		// low,high = m*ai + borrow (as an add); then subtract that
		// double-word product from c[i:i+2] via borrow propagation.
		lo, hi := word.MulAddCarry(m, ai, 0, borrow)
		var b word.Word
		c[i], b = word.SubWithBorrow(c[i], lo, 0)
		borrow = hi + b
	}
	return borrow
}
