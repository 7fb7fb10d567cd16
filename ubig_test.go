package bigi

import "testing"

func TestUBigFromWordIsSmall(t *testing.T) {
	u := UBigFromWord(42)
	if u.Repr() != ReprSmall {
		t.Fatalf("Repr() = %v, want Small", u.Repr())
	}
	w, ok := u.SmallWord()
	if !ok || w != 42 {
		t.Fatalf("SmallWord() = (%d,%v), want (42,true)", w, ok)
	}
}

func TestUBigZeroIsSmall(t *testing.T) {
	u := UBigFromWord(0)
	if !u.IsZero() || u.Repr() != ReprSmall {
		t.Fatalf("zero UBig: IsZero=%v Repr=%v", u.IsZero(), u.Repr())
	}
	if u.Words() != nil {
		t.Fatalf("Words() of zero = %v, want nil", u.Words())
	}
}

func TestUBigCloneIsIndependent(t *testing.T) {
	orig, err := UBigFromStrRadix("ffffffffffffffffffffffff", 16)
	if err != nil {
		t.Fatal(err)
	}
	if orig.Repr() != ReprLarge {
		t.Fatalf("test fixture expected to parse as Large, got %v", orig.Repr())
	}
	clone := orig.Clone()
	if ubigToBig(clone).Cmp(ubigToBig(orig)) != 0 {
		t.Fatalf("clone value mismatch")
	}
	// Clone preserves the source buffer's capacity.
	if clone.capacity() != orig.capacity() {
		t.Fatalf("clone.capacity()=%d orig.capacity()=%d, want equal right after Clone", clone.capacity(), orig.capacity())
	}
	// Overwrite the clone's low limb and confirm the original is unaffected.
	clone.large.Set(0, 0)
	if ubigToBig(clone).Cmp(ubigToBig(orig)) == 0 {
		t.Fatalf("mutating the clone's buffer changed the original")
	}
}

func TestUBigCloneFromReusesDestinationBuffer(t *testing.T) {
	src, err := UBigFromStrRadix("ffffffffffffffffffffffff", 16)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := UBigFromStrRadix("eeeeeeeeeeeeeeeeeeeeeeee", 16)
	if err != nil {
		t.Fatal(err)
	}
	before := &dst.large.Words()[0]
	dst.CloneFrom(src)
	if ubigToBig(dst).Cmp(ubigToBig(src)) != 0 {
		t.Fatalf("CloneFrom did not copy value: got %v want %v", ubigToBig(dst), ubigToBig(src))
	}
	if &dst.large.Words()[0] != before {
		t.Fatalf("CloneFrom reallocated the destination buffer")
	}
}
