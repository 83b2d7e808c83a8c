// Package orchestration runs the schoolbook and FFT multiplication paths
// concurrently for the same operand pair and reconciles their results. It
// decouples the comparison logic from presentation via the ResultPresenter
// interface.
package orchestration
