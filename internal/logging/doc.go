// Package logging provides a unified logging interface for bigcalc's CLI,
// server, and calibration runner. It abstracts the underlying logging
// implementation, allowing consistent logging across components while
// supporting multiple backends.
package logging
