package bignum

import "github.com/agbru/bignum/internal/fftmul"

// DefaultFFTThreshold is the bit-length crossover above which Mul dispatches
// to the FFT path. It is a tuning knob, not a correctness requirement.
// Mul uses it; internal/config and internal/calibration pass their own
// thresholds through MulWithThreshold instead of changing it.
var DefaultFFTThreshold = 8 * digitBits * 200

// mulDigit multiplies a magnitude by a single digit, returning a trimmed
// result whose high end may carry one extra digit.
func mulDigit(a []Digit, d Digit) []Digit {
	if d == 0 || len(a) == 0 {
		return nil
	}
	out := make([]Digit, len(a)+1)
	var carry doubleDigit
	for i := len(a) - 1; i >= 0; i-- {
		p := doubleDigit(a[i])*doubleDigit(d) + carry
		out[i+1] = Digit(p)
		carry = p >> digitBits
	}
	out[0] = Digit(carry)
	return trim(out)
}

// shiftByDigits appends `positions` zero digits to the low end of mag,
// i.e. multiplies by B^positions.
func shiftByDigits(mag []Digit, positions int) []Digit {
	if len(mag) == 0 || positions == 0 {
		out := make([]Digit, len(mag))
		copy(out, mag)
		return out
	}
	out := make([]Digit, len(mag)+positions)
	copy(out, mag)
	return out
}

// schoolbookMultiply implements small-operand path: for each
// digit of b (from the units end), multiply the whole of a by it, shift the
// row into position, and accumulate via addMagnitude. This is the
// row-at-a-time rearrangement of "accumulate products then propagate
// carries in a second pass" that avoids the double-digit accumulator
// overflowing when many products land on the same position.
func schoolbookMultiply(a, b []Digit) []Digit {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := []Digit{}
	for i := len(b) - 1; i >= 0; i-- {
		row := mulDigit(a, b[i])
		if len(row) == 0 {
			continue
		}
		shifted := shiftByDigits(row, len(b)-1-i)
		result = addMagnitude(result, shifted)
	}
	return trim(result)
}

// smartMultiply dispatches to FFT convolution when both operands exceed
// threshold bits, falling back to schoolbook when the operands are smaller
// or when fftmul reports its precision budget would be exceeded.
func smartMultiply(a, b []Digit, threshold int) []Digit {
	if bitsOf(a) > threshold && bitsOf(b) > threshold {
		if product, err := fftmul.Multiply(a, b); err == nil {
			return product
		}
	}
	return schoolbookMultiply(a, b)
}

// Mul returns a * b. Large operands are routed through the FFT
// convolution path; the result is sign-adjusted by the XOR of operand
// signs, with zero canonically non-negative.
func (a *BigInt) Mul(b *BigInt) *BigInt {
	return a.MulWithThreshold(b, DefaultFFTThreshold)
}

// MulWithThreshold is Mul with an explicit FFT bit-length threshold,
// letting callers (internal/config, internal/calibration) tune the
// crossover without a package-level variable.
func (a *BigInt) MulWithThreshold(b *BigInt, threshold int) *BigInt {
	mag := smartMultiply(a.mag, b.mag, threshold)
	return New(a.neg != b.neg, mag)
}

// Pow returns base^exp via binary squaring. A negative
// exponent returns zero.
func (base *BigInt) Pow(exp *BigInt) *BigInt {
	if exp.Sign() < 0 {
		return Zero()
	}
	result := New(false, []Digit{1})
	b := base.clone()
	e := exp.clone()
	for !e.IsZero() {
		if e.Bit(0) == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		e = e.Shr(1)
	}
	return result
}

// PowUint is Pow for a native exponent.
func (base *BigInt) PowUint(exp uint64) *BigInt {
	return base.Pow(FromUnsigned(exp))
}
