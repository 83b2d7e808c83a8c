package bignum

// addMagnitude sums two magnitudes (most-significant digit first), aligning
// at the units digit, propagating carry low to high with the double-digit
// type, and trimming the result.
func addMagnitude(a, b []Digit) []Digit {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Digit, len(a)+1)
	var carry doubleDigit
	ai, bi := len(a)-1, len(b)-1
	oi := len(out) - 1
	for bi >= 0 {
		sum := doubleDigit(a[ai]) + doubleDigit(b[bi]) + carry
		out[oi] = Digit(sum)
		carry = sum >> digitBits
		ai--
		bi--
		oi--
	}
	for ai >= 0 {
		sum := doubleDigit(a[ai]) + carry
		out[oi] = Digit(sum)
		carry = sum >> digitBits
		ai--
		oi--
	}
	out[oi] = Digit(carry)
	return trim(out)
}

// Add returns a + b, dispatching on sign.
func (a *BigInt) Add(b *BigInt) *BigInt {
	if a.neg == b.neg {
		return New(a.neg, addMagnitude(a.mag, b.mag))
	}
	// Different signs: subtract the smaller magnitude from the larger; the
	// result takes the sign of the larger magnitude.
	switch cmpMagnitude(a.mag, b.mag) {
	case 0:
		return Zero()
	case 1:
		return New(a.neg, subMagnitude(a.mag, b.mag))
	default:
		return New(b.neg, subMagnitude(b.mag, a.mag))
	}
}
