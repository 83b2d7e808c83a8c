package bignum

import "testing"

func mustParse(t *testing.T, s string, base int) *BigInt {
	t.Helper()
	v, err := Parse(s, base)
	if err != nil {
		t.Fatalf("Parse(%q, %d): %v", s, base, err)
	}
	return v
}

func TestAddDecimalScenario(t *testing.T) {
	a := mustParse(t, "123456789", 10)
	b := mustParse(t, "987654321", 10)
	got := a.Add(b).String()
	if want := "1111111110"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAddHexOverflowScenario(t *testing.T) {
	a := mustParse(t, "ffffffffffffffff", 16)
	b := FromSigned(1)
	got, err := a.Add(b).Format(16, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := "10000000000000000"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPowScenario(t *testing.T) {
	got := mustParse(t, "2", 10).Pow(FromSigned(100)).String()
	if want := "1267650600228229401496703205376"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDivmodNegativeScenario(t *testing.T) {
	a := mustParse(t, "-7", 10)
	b := mustParse(t, "2", 10)
	q, r, err := a.Divmod(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.String(); got != "-3" {
		t.Errorf("quotient = %s, want -3", got)
	}
	if got := r.String(); got != "-1" {
		t.Errorf("remainder = %s, want -1", got)
	}
}

func TestMulScenario(t *testing.T) {
	a := mustParse(t, "1000000", 10)
	got := a.Mul(a).String()
	if want := "1000000000000"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestShiftLeftHexScenario(t *testing.T) {
	got, err := mustParse(t, "1", 10).Shl(128).Format(16, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := "100000000000000000000000000000000"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := mustParse(t, "5", 10).Divmod(Zero())
	if err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestBadBase(t *testing.T) {
	if _, err := FromDigits([]byte("1"), 11); err == nil {
		t.Fatal("expected BadBase error for base 11")
	}
	if _, err := Zero().Format(17, 1); err == nil {
		t.Fatal("expected BadBase error for format base 17")
	}
}

func TestInvalidDigit(t *testing.T) {
	if _, err := FromDigits([]byte("12x4"), 10); err == nil {
		t.Fatal("expected InvalidDigit error")
	}
	if _, err := FromDigits([]byte("12g4"), 16); err == nil {
		t.Fatal("expected InvalidDigit error for hex")
	}
}

func TestCanonicalZero(t *testing.T) {
	z1 := New(false, nil)
	z2 := New(true, nil) // negative sign on zero must be corrected
	if z1.Sign() != 0 || z2.Sign() != 0 {
		t.Fatalf("zero sign not canonical: %d, %d", z1.Sign(), z2.Sign())
	}
	if !z1.Equal(z2) {
		t.Fatal("both zero representations must compare equal")
	}
}

// TestMixedSignBitwisePreservesLHSSign documents intentionally
// non-two's-complement-correct bitwise semantics for mixed-sign operands:
// the result carries the lhs sign regardless of rhs's sign.
func TestMixedSignBitwisePreservesLHSSign(t *testing.T) {
	neg := FromSigned(-5)
	pos := FromSigned(3)
	if got := neg.And(pos); got.Sign() >= 0 {
		t.Errorf("And with negative lhs should stay negative, got sign %d", got.Sign())
	}
	if got := pos.Or(neg); got.Sign() < 0 {
		t.Errorf("Or with non-negative lhs should stay non-negative, got sign %d", got.Sign())
	}
}

// TestRightShiftNegativeIsNotSignExtending documents that right-shifting a
// negative value shifts the magnitude and keeps the sign; it does not
// sign-extend like a two's-complement arithmetic shift.
func TestRightShiftNegativeIsNotSignExtending(t *testing.T) {
	neg := FromSigned(-8) // magnitude 8 = 0b1000
	got := neg.Shr(1)
	want := FromSigned(-4) // magnitude shifts to 0b0100, sign stays negative
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestBitsBytesDigits(t *testing.T) {
	v := mustParse(t, "ff", 16) // 255, 8 bits
	if v.Bits() != 8 {
		t.Errorf("Bits() = %d, want 8", v.Bits())
	}
	if v.Bytes() != 1 {
		t.Errorf("Bytes() = %d, want 1", v.Bytes())
	}
	if v.Digits() != 1 {
		t.Errorf("Digits() = %d, want 1", v.Digits())
	}
	if Zero().Bits() != 0 {
		t.Errorf("Bits() of zero should be 0")
	}
}

func TestBitIndexedAccess(t *testing.T) {
	v := mustParse(t, "5", 10) // 0b101
	if v.Bit(0) != 1 || v.Bit(1) != 0 || v.Bit(2) != 1 {
		t.Fatal("unexpected bit pattern for 5")
	}
	if v.Bit(1000) != 0 {
		t.Fatal("out-of-range bit access must return 0")
	}
}

func TestFill(t *testing.T) {
	got := Fill(4).String()
	if want := "15"; got != want {
		t.Errorf("Fill(4) = %s, want %s", got, want)
	}
}

func TestTwosComplement(t *testing.T) {
	neg := FromSigned(-1)
	got := neg.TwosComplement(8)
	if want := FromSigned(255); !got.Equal(want) {
		t.Errorf("TwosComplement(8) of -1 = %s, want %s", got.String(), want.String())
	}
}

func TestSubTwosComplementAgreesWithLongSub(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890", 10)
	b := mustParse(t, "98765432109876543210", 10)
	want := subMagnitude(a.mag, b.mag)
	got := subTwosComplement(a.mag, b.mag)
	if cmpMagnitude(want, got) != 0 {
		t.Fatalf("subTwosComplement disagrees with subMagnitude")
	}
}

func TestRoundTripBase256(t *testing.T) {
	v := mustParse(t, "123456789012345678901234567890", 10)
	encoded, err := v.Format(256, 1)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromDigits([]byte(encoded), 256)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v.Abs()) {
		t.Fatalf("round trip failed: got %s, want %s", back.String(), v.String())
	}
}
