// Package bigi implements arbitrary-precision unsigned and signed
// integers (UBig and IBig) built on a small-value-optimized
// representation: a value fitting in one Word is stored inline, larger
// values spill into a heap-backed limb buffer.
//
// This package covers the numeric core — storage representation,
// multi-word arithmetic kernels, and radix-aware parsing — and leaves
// formatting, division, shifts, and modular arithmetic to external
// collaborators built on top of it.
//
// Parsing grammar (case-insensitive digit letters):
//
//	signed   := ('+' | '-')? unsigned
//	unsigned := ('0b' binary | '0o' octal | '0x' hex | decimal)   -- with-prefix entry points
//	          | <radix-r digits>                                  -- fixed-radix entry points
//	digit_r  := one of "0".."9","a".."z","A".."Z" with value < r
//
// An empty digit sequence after sign/prefix stripping is a NoDigits
// error. Leading zeros are permitted and discarded.
package bigi
