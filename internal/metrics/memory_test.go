package metrics

import (
	"testing"

	"github.com/agbru/bignum/bignum"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	// Allocate some memory
	_ = make([]byte, 1024*1024) // 1 MB

	after := mc.Snapshot()

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in        string
		want      uint64
		wantLimit bool
	}{
		{"", 0, false},
		{"1024", 1024, true},
		{"512KB", 512 * 1024, true},
		{"2MB", 2 * 1024 * 1024, true},
		{"1GB", 1 << 30, true},
		{"1GiB", 1 << 30, true},
		{"1.5M", uint64(1.5 * (1 << 20)), true},
	}
	for _, c := range cases {
		got, limited, err := ParseByteSize(c.in)
		if err != nil {
			t.Fatalf("ParseByteSize(%q): unexpected error: %v", c.in, err)
		}
		if limited != c.wantLimit {
			t.Errorf("ParseByteSize(%q): limited = %v, want %v", c.in, limited, c.wantLimit)
		}
		if got != c.want {
			t.Errorf("ParseByteSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseByteSize_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"not-a-size", "-5MB"} {
		if _, _, err := ParseByteSize(in); err == nil {
			t.Errorf("ParseByteSize(%q): expected error, got nil", in)
		}
	}
}

func TestEstimateResultBytes(t *testing.T) {
	t.Parallel()

	x, _ := bignum.Parse("123456789012345678901234567890", 10) // several limbs
	y, _ := bignum.Parse("2", 10)

	mul := EstimateResultBytes("mul", x, y)
	if mul != EstimateOperandBytes(x)+EstimateOperandBytes(y) {
		t.Errorf("mul estimate = %d, want sum of operand sizes", mul)
	}

	add := EstimateResultBytes("add", x, y)
	if add <= EstimateOperandBytes(x) {
		t.Errorf("add estimate = %d, want > larger operand size", add)
	}

	div := EstimateResultBytes("div", x, y)
	if div != EstimateOperandBytes(x) {
		t.Errorf("div estimate = %d, want larger operand size %d", div, EstimateOperandBytes(x))
	}
}
