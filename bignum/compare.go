package bignum

// cmpMagnitude compares two magnitudes (most-significant digit first),
// returning -1, 0, or 1.
func cmpMagnitude(a, b []Digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpAbs compares |a| and |b|, returning -1, 0, or 1.
func (a *BigInt) CmpAbs(b *BigInt) int {
	return cmpMagnitude(a.mag, b.mag)
}

// Cmp returns -1 if a < b, 0 if a == b, or 1 if a > b, dispatching on sign
//
func (a *BigInt) Cmp(b *BigInt) int {
	as, bs := a.Sign(), b.Sign()
	switch {
	case as != bs:
		if as < bs {
			return -1
		}
		return 1
	case as == 0:
		return 0
	case as > 0:
		return cmpMagnitude(a.mag, b.mag)
	default: // both negative: reversed magnitude comparison
		return -cmpMagnitude(a.mag, b.mag)
	}
}

// Equal reports whether a and b represent the same integer.
func (a *BigInt) Equal(b *BigInt) bool {
	return a.Cmp(b) == 0
}

// Lt reports whether a < b.
func (a *BigInt) Lt(b *BigInt) bool { return a.Cmp(b) < 0 }

// Gt reports whether a > b.
func (a *BigInt) Gt(b *BigInt) bool { return a.Cmp(b) > 0 }

// Le reports whether a <= b.
func (a *BigInt) Le(b *BigInt) bool { return a.Cmp(b) <= 0 }

// Ge reports whether a >= b.
func (a *BigInt) Ge(b *BigInt) bool { return a.Cmp(b) >= 0 }
