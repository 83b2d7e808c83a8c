package fftmul

import "math/cmplx"

// fftInPlace runs an iterative Cooley-Tukey FFT (or its inverse) over a,
// whose length must be a power of two: bit-reversal permutation followed by
// in-place butterflies using twiddle factors from the shared cache
//.
func fftInPlace(a []complex128, invert bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	table := twiddleTable(n)
	for length := 2; length <= n; length <<= 1 {
		step := n / length
		half := length / 2
		for i := 0; i < n; i += length {
			for j := 0; j < half; j++ {
				w := table[j*step]
				if invert {
					w = cmplx.Conj(w)
				}
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
			}
		}
	}

	if invert {
		nc := complex(float64(n), 0)
		for i := range a {
			a[i] /= nc
		}
	}
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
