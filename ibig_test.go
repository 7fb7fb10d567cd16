package bigi

import "testing"

func TestFromSignMagnitudeCanonicalizesZero(t *testing.T) {
	x := FromSignMagnitude(Negative, UBigFromWord(0))
	if x.Sign() != Positive {
		t.Fatalf("Sign() = %v, want Positive for a zero magnitude", x.Sign())
	}
}

func TestFromSignMagnitudeKeepsSignForNonZero(t *testing.T) {
	x := FromSignMagnitude(Negative, UBigFromWord(5))
	if x.Sign() != Negative || ubigToBig(x.UnsignedAbs()).Int64() != 5 {
		t.Fatalf("x = {sign:%v mag:%v}, want {Negative 5}", x.Sign(), ubigToBig(x.UnsignedAbs()))
	}
}

func TestIBigCloneFromReusesMagnitudeBuffer(t *testing.T) {
	src, err := IBigFromStrRadix("-ffffffffffffffffffffffff", 16)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := IBigFromStrRadix("eeeeeeeeeeeeeeeeeeeeeeee", 16)
	if err != nil {
		t.Fatal(err)
	}
	before := &dst.mag.large.Words()[0]
	dst.CloneFrom(src)
	if &dst.mag.large.Words()[0] != before {
		t.Fatalf("CloneFrom reallocated the destination magnitude buffer")
	}
	if dst.Sign() != Negative {
		t.Fatalf("Sign() = %v, want Negative", dst.Sign())
	}
	if ubigToBig(dst.UnsignedAbs()).Cmp(ubigToBig(src.UnsignedAbs())) != 0 {
		t.Fatalf("magnitude mismatch after CloneFrom")
	}
}

func TestIBigFromWordIsPositive(t *testing.T) {
	x := IBigFromWord(7)
	if x.Sign() != Positive || ubigToBig(x.UnsignedAbs()).Int64() != 7 {
		t.Fatalf("IBigFromWord(7) = {sign:%v mag:%v}, want {Positive 7}", x.Sign(), ubigToBig(x.UnsignedAbs()))
	}
}
