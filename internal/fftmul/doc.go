// Package fftmul multiplies two big magnitudes (slices of base-2^32
// digits, most-significant digit first) via FFT convolution, for use by
// bignum's multiplication dispatcher once operands grow past the schoolbook
// threshold.
//
// Each 32-bit digit is split into two 16-bit limbs before transforming so
// that convolution sums stay inside float64's 53-bit exact-integer mantissa.
// Multiply refuses to run and returns an error if the padded transform
// length would still risk exceeding that budget; the caller falls back to
// schoolbook multiplication.
package fftmul
