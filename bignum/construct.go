package bignum

import "github.com/agbru/bignum/bigerr"

// Zero returns the canonical integer zero.
func Zero() *BigInt {
	return &BigInt{}
}

// New constructs a BigInt directly from an already-formed sign and digit
// sequence (most-significant digit first), trimming to restore invariants.
// A negative sign on a zero magnitude is silently corrected to non-negative.
func New(negative bool, magnitude []Digit) *BigInt {
	mag := make([]Digit, len(magnitude))
	copy(mag, magnitude)
	b := &BigInt{neg: negative, mag: mag}
	return b.normalize()
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FromSigned constructs a BigInt from any native signed integer type up to
// 64 bits wide.
func FromSigned[T signedInt](v T) *BigInt {
	i64 := int64(v)
	neg := i64 < 0
	var u uint64
	if neg {
		// Avoid overflow on math.MinInt64 by negating in the unsigned domain.
		u = uint64(-(i64))
		if i64 == minInt64 {
			u = uint64(1) << 63
		}
	} else {
		u = uint64(i64)
	}
	return fromUint64(neg, u)
}

const minInt64 = -1 << 63

// FromUnsigned constructs a BigInt from any native unsigned integer type up
// to 64 bits wide.
func FromUnsigned[T unsignedInt](v T) *BigInt {
	return fromUint64(false, uint64(v))
}

// fromUint64 peels base-B digits off |v| from the low end, then reverses
// into most-significant-first order
func fromUint64(neg bool, v uint64) *BigInt {
	if v == 0 {
		return Zero()
	}
	var rev []Digit
	for v > 0 {
		rev = append(rev, Digit(v&uint64(digitBase-1)))
		v >>= digitBits
	}
	mag := make([]Digit, len(rev))
	for i, d := range rev {
		mag[len(rev)-1-i] = d
	}
	return New(neg, mag)
}

// FromDigits constructs a non-negative BigInt from a sequence of input
// elements interpreted in the given base. Supported bases are
// 2..10, 16, and 256.
//
// For bases 2..10, each byte must be an ASCII digit '0'..(base-1) and the
// value is accumulated as value = value*base + digit. For base 16, each byte
// must be an ASCII hex digit ('0'-'9', 'a'-'f', 'A'-'F'). For base 256, each
// byte is taken directly as a digit of a big-endian, non-negative magnitude
// (this implementation's W=32 digits are filled 4 input bytes at a time,
// most-significant byte first, zero-padding the input on the left so its
// length is a multiple of 4).
//
// The returned value is always non-negative; callers negate explicitly.
func FromDigits(input []byte, base int) (*BigInt, error) {
	switch {
	case base >= 2 && base <= 10:
		return fromDecimalLikeDigits(input, base)
	case base == 16:
		return fromHexDigits(input)
	case base == 256:
		return fromByteDigits(input)
	default:
		return nil, bigerr.NewBadBase("parse", base)
	}
}

func fromDecimalLikeDigits(input []byte, base int) (*BigInt, error) {
	value := Zero()
	baseBI := FromSigned(base)
	for pos, c := range input {
		if c < '0' || c > '9' || int(c-'0') >= base {
			return nil, bigerr.NewInvalidDigit(base, rune(c), pos)
		}
		value = mustAdd(mulMagnitude(value, baseBI), FromSigned(int(c-'0')))
	}
	return value, nil
}

func fromHexDigits(input []byte) (*BigInt, error) {
	value := Zero()
	for pos, c := range input {
		d, ok := hexDigitValue(c)
		if !ok {
			return nil, bigerr.NewInvalidDigit(16, rune(c), pos)
		}
		value = New(false, shiftLeftDigits(value.mag, 4))
		value.mag = addMagnitude(value.mag, []Digit{Digit(d)})
		value = value.normalize()
	}
	return value, nil
}

func hexDigitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// fromByteDigits builds a non-negative magnitude directly from raw bytes,
// treating the input as a big-endian sequence of base-256 digits and
// re-chunking it into this implementation's base-2^32 digits.
func fromByteDigits(input []byte) (*BigInt, error) {
	if len(input) == 0 {
		return Zero(), nil
	}
	pad := (4 - len(input)%4) % 4
	padded := make([]byte, pad+len(input))
	copy(padded[pad:], input)

	mag := make([]Digit, len(padded)/4)
	for i := range mag {
		off := i * 4
		mag[i] = Digit(padded[off])<<24 | Digit(padded[off+1])<<16 | Digit(padded[off+2])<<8 | Digit(padded[off+3])
	}
	return New(false, mag), nil
}

// mustAdd adds two non-negative BigInts; used internally where both operands
// are known non-negative by construction.
func mustAdd(mag []Digit, rhs *BigInt) *BigInt {
	return New(false, addMagnitude(mag, rhs.mag))
}

// mulMagnitude multiplies two non-negative BigInts' magnitudes using the
// schoolbook path (parsing never deals with operands large enough to justify
// FFT dispatch).
func mulMagnitude(a, b *BigInt) []Digit {
	return schoolbookMultiply(a.mag, b.mag)
}
