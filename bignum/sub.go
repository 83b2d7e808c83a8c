package bignum

// subMagnitude computes a - b assuming |a| >= |b|, borrowing from low to
// high. Passing a magnitude smaller than b is a programmer error: the
// borrow would never clear and the result would be garbage, so callers
// (Add, Sub) are required to have already ordered the operands by
// cmpMagnitude.
func subMagnitude(a, b []Digit) []Digit {
	out := make([]Digit, len(a))
	var borrow doubleDigit
	ai := len(a) - 1
	bi := len(b) - 1
	oi := len(out) - 1
	for bi >= 0 {
		d := doubleDigit(a[ai]) - doubleDigit(b[bi]) - borrow
		if d > doubleDigit(a[ai]) { // underflowed
			d += digitBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[oi] = Digit(d)
		ai--
		bi--
		oi--
	}
	for ai >= 0 {
		d := doubleDigit(a[ai]) - borrow
		if d > doubleDigit(a[ai]) {
			d += digitBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[oi] = Digit(d)
		ai--
		oi--
	}
	return trim(out)
}

// subTwosComplement is an alternate subtraction algorithm: form the two's
// complement of b at bit-width max(bits(a),bits(b))+1, add it to a, and
// discard the carry bit. Kept so tests can assert it agrees with
// subMagnitude on every input; not used by Sub, which uses subMagnitude.
func subTwosComplement(a, b []Digit) []Digit {
	width := bitsOf(a)
	if wb := bitsOf(b); wb > width {
		width = wb
	}
	width++

	bComp := twosComplementOf(b, width, true)
	sum := addMagnitude(a, bComp)

	// Discard the overflow bit above width: mask sum down to width bits.
	return trimToBits(sum, width)
}

// Sub returns a - b, dispatching on sign symmetrically to Add.
func (a *BigInt) Sub(b *BigInt) *BigInt {
	negB := &BigInt{neg: !b.neg, mag: b.mag}
	if b.IsZero() {
		negB.neg = false
	}
	return a.Add(negB)
}

// Neg returns -a. The zero value's sign is left non-negative.
func (a *BigInt) Neg() *BigInt {
	if a.IsZero() {
		return Zero()
	}
	return New(!a.neg, a.mag)
}

// Abs returns |a|.
func (a *BigInt) Abs() *BigInt {
	return New(false, a.mag)
}
