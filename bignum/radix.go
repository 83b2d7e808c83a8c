package bignum

import "github.com/agbru/bignum/bigerr"

const digitAlphabet = "0123456789abcdef"

// Format renders a base must be in {2..16} or 256;
// anything else is a BadBaseError. Zero formats as a single "0" (or, for
// base 256, a single zero byte), then the result is left-padded to
// minLength with "0" characters (bases 2..16) or zero bytes (base 256). For
// bases 2..16 a leading "-" is emitted before the padding, matching
// conventional printf behavior. Base 256 discards the sign; the output is
// magnitude-only.
func (a *BigInt) Format(base, minLength int) (string, error) {
	switch {
	case base >= 2 && base <= 16:
		return formatBaseN(a, base, minLength), nil
	case base == 256:
		return formatBase256(a, minLength), nil
	default:
		return "", bigerr.NewBadBase("format", base)
	}
}

// String formats a in base 10 with no minimum width, as the textual output
// contract of  requires ("format with str(10,1) for decimal
// streams").
func (a *BigInt) String() string {
	s, _ := a.Format(10, 1)
	return s
}

func formatBaseN(a *BigInt, base, minLength int) string {
	mag := make([]Digit, len(a.mag))
	copy(mag, a.mag)

	var digits []byte
	for len(mag) > 0 {
		q, r := divmodSmallDivisor(mag, Digit(base))
		digits = append(digits, digitAlphabet[r])
		mag = q
	}
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	reverseBytes(digits)

	if pad := minLength - len(digits); pad > 0 {
		padded := make([]byte, pad, pad+len(digits))
		for i := range padded {
			padded[i] = '0'
		}
		digits = append(padded, digits...)
	}

	if a.neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func formatBase256(a *BigInt, minLength int) string {
	out := magnitudeToBytes(a.mag)
	if pad := minLength - len(out); pad > 0 {
		padded := make([]byte, pad, pad+len(out))
		out = append(padded, out...)
	}
	return string(out)
}

// magnitudeToBytes returns the minimal big-endian byte encoding of mag (a
// single zero byte for the zero value).
func magnitudeToBytes(mag []Digit) []byte {
	if len(mag) == 0 {
		return []byte{0}
	}
	out := make([]byte, len(mag)*4)
	for i, d := range mag {
		out[i*4] = byte(d >> 24)
		out[i*4+1] = byte(d >> 16)
		out[i*4+2] = byte(d >> 8)
		out[i*4+3] = byte(d)
	}
	i := 0
	for i < len(out)-1 && out[i] == 0 {
		i++
	}
	return out[i:]
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Parse reads an optionally "-"-prefixed token in the given base (2..10 or
// 16) and returns the signed BigInt, per the textual input contract of
//
func Parse(s string, base int) (*BigInt, error) {
	if s == "" {
		return Zero(), nil
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}
	v, err := FromDigits([]byte(s), base)
	if err != nil {
		return nil, err
	}
	if neg && !v.IsZero() {
		return v.Neg(), nil
	}
	return v, nil
}
