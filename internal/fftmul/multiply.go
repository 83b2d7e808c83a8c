package fftmul

import (
	"errors"
	"math"
)

// limbBits is the width of the sub-digit limb transformed by the FFT. Each
// 32-bit input digit is split into two of these).
const limbBits = 16
const limbBase = 1 << limbBits

// mantissaBudget is the largest transform length for which a convolution
// sum of limbBase-bounded products is still guaranteed to round-trip exactly
// through float64 (53-bit mantissa): N * limbBase^2 < 2^53.
const mantissaBudget = 1 << 21

// ErrPrecisionBudgetExceeded is returned when the padded transform length
// would risk losing precision in the convolution; callers should fall back
// to schoolbook multiplication).
var ErrPrecisionBudgetExceeded = errors.New("fftmul: transform length exceeds float64 precision budget")

// Multiply returns the product of two magnitudes, each a slice of base-2^32
// digits stored most-significant digit first, using FFT convolution
//. It returns ErrPrecisionBudgetExceeded instead of an
// imprecise result when the operands are too large for this limb width.
func Multiply(a, b []uint32) ([]uint32, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}

	la := toLimbsLE(a)
	lb := toLimbsLE(b)

	n := nextPow2(len(la) + len(lb))
	if n > mantissaBudget {
		return nil, ErrPrecisionBudgetExceeded
	}

	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, v := range la {
		fa[i] = complex(float64(v), 0)
	}
	for i, v := range lb {
		fb[i] = complex(float64(v), 0)
	}

	fftInPlace(fa, false)
	fftInPlace(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fftInPlace(fa, true)

	limbs := make([]uint64, n)
	for i, c := range fa {
		limbs[i] = uint64(math.Round(real(c)))
	}

	// Propagate carries from the units limb upward.
	var carry uint64
	for i := 0; i < len(limbs); i++ {
		v := limbs[i] + carry
		limbs[i] = v % limbBase
		carry = v / limbBase
	}
	for carry > 0 {
		limbs = append(limbs, carry%limbBase)
		carry /= limbBase
	}

	limbs32 := make([]uint32, len(limbs))
	for i, v := range limbs {
		limbs32[i] = uint32(v)
	}
	return fromLimbsLE(limbs32), nil
}

// toLimbsLE splits a most-significant-digit-first magnitude into
// little-endian limbBits-wide limbs (low limb of the units digit first).
func toLimbsLE(mag []uint32) []uint32 {
	limbs := make([]uint32, 0, len(mag)*2)
	for i := len(mag) - 1; i >= 0; i-- {
		d := mag[i]
		limbs = append(limbs, d&(limbBase-1), d>>limbBits)
	}
	return trimLimbsLE(limbs)
}

// trimLimbsLE drops trailing (most-significant, since the slice is
// little-endian) zero limbs, keeping at least one.
func trimLimbsLE(limbs []uint32) []uint32 {
	i := len(limbs)
	for i > 1 && limbs[i-1] == 0 {
		i--
	}
	return limbs[:i]
}

// fromLimbsLE recombines little-endian limbBits limbs, two per digit, into a
// most-significant-digit-first magnitude of 32-bit digits, trimmed.
func fromLimbsLE(limbs []uint32) []uint32 {
	if len(limbs)%2 != 0 {
		limbs = append(limbs, 0)
	}
	ndigits := len(limbs) / 2
	mag := make([]uint32, ndigits)
	for i := 0; i < ndigits; i++ {
		lo := limbs[2*i]
		hi := limbs[2*i+1]
		mag[ndigits-1-i] = lo | hi<<limbBits
	}
	j := 0
	for j < len(mag) && mag[j] == 0 {
		j++
	}
	return mag[j:]
}
