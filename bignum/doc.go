// Package bignum implements an arbitrary-precision signed integer, BigInt.
//
// A BigInt is a sign paired with a magnitude stored as base-2^32 digits,
// most-significant digit first. All arithmetic, comparison, bitwise, shift,
// and radix conversion operations one expects from a built-in integer are
// provided, with no upper bound on magnitude beyond available memory.
//
// Multiplication of large operands is dispatched to an FFT-based convolution
// (internal/fftmul); everything else is schoolbook. Division uses a
// non-recursive, shift-based binary long division. See DESIGN.md for the
// grounding of each algorithm.
package bignum
