package bignum

import "github.com/agbru/bignum/bigerr"

// divmodShift implements non-recursive, shift-based binary
// long division: schoolbook binary long division with explicit bit masks
// (copyd, adder) standing in for a running remainder register, avoiding the
// recursion depth of a naive recursive divmod.
func divmodShift(a, b []Digit) (q, r []Digit) {
	if len(a) == 0 {
		return nil, nil
	}
	n := bitsOf(a)

	copyd := shiftLeftDigits(b, n-1)
	adder := shiftLeftDigits([]Digit{1}, n-1)
	copyn := make([]Digit, len(a))
	copy(copyn, a)

	var quotient []Digit
	for i := 0; i < n; i++ {
		if cmpMagnitude(copyd, copyn) <= 0 {
			copyn = subMagnitude(copyn, copyd)
			quotient = orMagnitude(quotient, adder)
		}
		copyd = shiftRightDigits(copyd, 1)
		adder = shiftRightDigits(adder, 1)
	}
	return quotient, copyn
}

// divmodSmallDivisor is a small-divisor shortcut: when the divisor fits in
// one digit, divide from the most-significant end with a running remainder
// register instead of the general shift algorithm.
func divmodSmallDivisor(a []Digit, d Digit) (q []Digit, r Digit) {
	if d == 0 || len(a) == 0 {
		return nil, 0
	}
	quotient := make([]Digit, len(a))
	var rem doubleDigit
	for i, digit := range a {
		cur := rem<<digitBits | doubleDigit(digit)
		quotient[i] = Digit(cur / doubleDigit(d))
		rem = cur % doubleDigit(d)
	}
	return trim(quotient), Digit(rem)
}

// divmodMagnitude computes |a| / |b| and |a| % |b|, dispatching to the
// small-divisor shortcut when |b| fits in a single digit.
func divmodMagnitude(a, b []Digit) (q, r []Digit) {
	if len(b) == 1 {
		quotient, rem := divmodSmallDivisor(a, b[0])
		if rem == 0 {
			return quotient, nil
		}
		return quotient, []Digit{rem}
	}
	return divmodShift(a, b)
}

// Divmod returns (quotient, remainder) satisfying a = quotient*b + remainder
// with |remainder| < |b|. The remainder takes the sign of the dividend a
// (truncated, C-style semantics); the quotient's sign is the XOR of operand
// signs. Dividing by zero returns bigerr.ErrDivisionByZero.
func (a *BigInt) Divmod(b *BigInt) (quotient, remainder *BigInt, err error) {
	if b.IsZero() {
		return nil, nil, bigerr.ErrDivisionByZero
	}
	if a.IsZero() {
		return Zero(), Zero(), nil
	}

	qMag, rMag := divmodMagnitude(a.mag, b.mag)
	quotient = New(a.neg != b.neg, qMag)
	remainder = New(a.neg, rMag)
	return quotient, remainder, nil
}

// Div returns a / b (truncated toward zero), or nil and an error if b is
// zero.
func (a *BigInt) Div(b *BigInt) (*BigInt, error) {
	q, _, err := a.Divmod(b)
	return q, err
}

// Mod returns a % b with the sign of a, or nil and an error if b is zero.
func (a *BigInt) Mod(b *BigInt) (*BigInt, error) {
	_, r, err := a.Divmod(b)
	return r, err
}
