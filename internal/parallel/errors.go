// Package parallel holds small concurrency utilities shared by packages
// that fan work out across goroutines (orchestration's algorithm
// comparison).
package parallel

import "sync"

// ErrorCollector captures the first non-nil error reported by any of a set
// of concurrent goroutines, discarding the rest. The zero value is ready to
// use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError records err as the collector's error if none has been recorded
// yet. Nil errors are ignored. Safe for concurrent use.
func (ec *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.err == nil {
		ec.err = err
	}
}

// Err returns the first error recorded, or nil if none was.
func (ec *ErrorCollector) Err() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.err
}
