package metrics

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/agbru/bignum/bignum"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

const digitBytes = 4 // bignum.Digit is a uint32 limb

// EstimateOperandBytes returns the magnitude storage of x in bytes.
func EstimateOperandBytes(x *bignum.BigInt) uint64 {
	return uint64(x.Digits()) * digitBytes
}

// EstimateResultBytes estimates the worst-case magnitude size, in bytes, of
// op applied to x and y. add/sub grow by at most one limb over the larger
// operand; mul's result is bounded by the sum of operand limb counts; pow is
// estimated as the base's size times (exponent + 1); div, mod, and cmp never
// allocate more than their largest input.
func EstimateResultBytes(op string, x, y *bignum.BigInt) uint64 {
	xb, yb := EstimateOperandBytes(x), EstimateOperandBytes(y)
	switch op {
	case "add", "sub":
		if xb > yb {
			return xb + digitBytes
		}
		return yb + digitBytes
	case "mul":
		return xb + yb
	case "pow":
		return xb * uint64(y.ToUint64()+1)
	default:
		if xb > yb {
			return xb
		}
		return yb
	}
}

// ParseByteSize parses a human-sized byte quantity such as "512MB", "2GiB",
// or a bare integer byte count. An empty string parses as (0, false) to
// signal "no limit configured".
func ParseByteSize(s string) (uint64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	upper := strings.ToUpper(s)
	multiplier := uint64(1)
	// Longest suffix first: "MB" must not be matched as the trailing "B" of
	// a bare-byte-with-no-multiplier before the two-letter forms get a look.
	suffixes := []struct {
		suffix string
		mult   uint64
	}{
		{"GIB", 1 << 30}, {"MIB", 1 << 20}, {"KIB", 1 << 10},
		{"GB", 1 << 30}, {"MB", 1 << 20}, {"KB", 1 << 10},
		{"G", 1 << 30}, {"M", 1 << 20}, {"K", 1 << 10},
		{"B", 1},
	}
	for _, s := range suffixes {
		if strings.HasSuffix(upper, s.suffix) {
			multiplier = s.mult
			upper = strings.TrimSuffix(upper, s.suffix)
			break
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(upper), 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid memory limit %q: %w", s, err)
	}
	if n < 0 {
		return 0, false, fmt.Errorf("invalid memory limit %q: must not be negative", s)
	}
	return uint64(n * float64(multiplier)), true, nil
}
