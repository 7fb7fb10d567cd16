// Package arith implements the multi-word slice kernels that UBig/IBig
// arithmetic dispatches to: add/sub with carry, multiply-word, and the
// chunked schoolbook multiply. Every kernel here traverses limbs low to
// high. The destination slice and any source slice must either be the same
// slice or fully disjoint; partial overlap is a programmer error and is not
// checked for.
package arith

import "github.com/gtank/bigi/internal/word"

// AddInPlace computes c += a and returns the carry out of position
// len(a). c must be at least as long as a; the tail c[len(a):] is left
// untouched for the caller to propagate the carry into.
func AddInPlace(c, a []word.Word) word.Word {
	if len(c) < len(a) {
		panic("arith: AddInPlace requires len(c) >= len(a)")
	}
	var carry word.Word
	for i := range a {
		c[i], carry = word.AddWithCarry(c[i], a[i], carry)
	}
	return carry
}

// SubInPlace computes c -= a and returns the borrow out of position
// len(a), analogous to AddInPlace.
func SubInPlace(c, a []word.Word) word.Word {
	if len(c) < len(a) {
		panic("arith: SubInPlace requires len(c) >= len(a)")
	}
	var borrow word.Word
	for i := range a {
		c[i], borrow = word.SubWithBorrow(c[i], a[i], borrow)
	}
	return borrow
}

// AddWordInPlace propagates an unsigned carry through c starting at
// position 0, stopping at the first slot that fully absorbs it. It
// returns the carry that remains after running off the end of c: 0 or 1
// when c is non-empty, since only the first slot ever absorbs more than a
// single bit, and the incoming carry unchanged when c is empty.
func AddWordInPlace(c []word.Word, carry word.Word) word.Word {
	for i := 0; i < len(c) && carry != 0; i++ {
		c[i], carry = word.AddWithCarry(c[i], carry, 0)
	}
	return carry
}

// SubWordInPlace is the subtractive analog of AddWordInPlace.
func SubWordInPlace(c []word.Word, borrow word.Word) word.Word {
	for i := 0; i < len(c) && borrow != 0; i++ {
		c[i], borrow = word.SubWithBorrow(c[i], borrow, 0)
	}
	return borrow
}

// AddSignedWordInPlace propagates a signed carry w through c starting at
// position 0, stopping at the first slot that absorbs it without further
// overflow. It returns the SignedWord that remains to be propagated past
// the end of c (0 unless c was too short to fully absorb w).
func AddSignedWordInPlace(c []word.Word, w word.SignedWord) word.SignedWord {
	if w == 0 {
		return 0
	}
	if w > 0 {
		carry := word.Word(w)
		for i := 0; i < len(c) && carry != 0; i++ {
			c[i], carry = word.AddWithCarry(c[i], carry, 0)
		}
		return word.SignedWord(carry)
	}
	borrow := word.Word(-w)
	for i := 0; i < len(c) && borrow != 0; i++ {
		c[i], borrow = word.SubWithBorrow(c[i], borrow, 0)
	}
	return -word.SignedWord(borrow)
}
