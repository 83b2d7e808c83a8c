// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full, untruncated result value.
	Verbose bool
	// OutputBase is the radix the result is rendered in (2..16 or 256).
	OutputBase int
}

// FormatQuietResult formats a result for quiet-mode scripting output: the
// bare value in OutputConfig's base, nothing else.
func FormatQuietResult(v *bignum.BigInt, base int) (string, error) {
	return v.Format(base, 1)
}

// truncateDecimal shortens s to its first and last DisplayEdges characters
// when it exceeds TruncationLimit, to keep huge results readable in a
// terminal. The sign, if present, is kept attached to the leading edge.
func truncateDecimal(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplayResult writes a fully formatted, colorized result summary: the
// operation name, duration, and the value itself (truncated unless verbose).
func DisplayResult(op string, v *bignum.BigInt, duration time.Duration, verbose bool, base int, out io.Writer) {
	s, err := v.Format(base, 1)
	if err != nil {
		fmt.Fprintf(out, "%sformat error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	if !verbose && base <= 16 {
		s = truncateDecimal(s)
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n", ui.ColorCyan(), op, ui.ColorReset(), ui.ColorYellow(), s, ui.ColorReset())
	fmt.Fprintf(out, "  %sduration%s: %s\n", ui.ColorUnderline(), ui.ColorReset(), FormatExecutionDuration(duration))
	fmt.Fprintf(out, "  %sdigits%s:   %d\n", ui.ColorUnderline(), ui.ColorReset(), v.Digits())
	fmt.Fprintf(out, "  %sbits%s:     %d\n", ui.ColorUnderline(), ui.ColorReset(), v.Bits())
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, v *bignum.BigInt, base int) error {
	s, err := FormatQuietResult(v, base)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

// WriteResultToFile writes a calculation result to a file, annotated with a
// small header describing the operation.
func WriteResultToFile(v *bignum.BigInt, op string, duration time.Duration, base int, path string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	s, err := v.Format(base, 1)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Bits: %d\n", v.Bits())
	fmt.Fprintf(file, "# Digits: %d\n", v.Digits())
	fmt.Fprintf(file, "\n%s\n", s)

	return nil
}

// DisplayResultWithConfig displays a result according to cfg, then saves it
// to a file if cfg.OutputFile is set.
func DisplayResultWithConfig(out io.Writer, v *bignum.BigInt, op string, duration time.Duration, cfg OutputConfig) error {
	base := cfg.OutputBase
	if base == 0 {
		base = 10
	}
	if cfg.Quiet {
		if err := DisplayQuietResult(out, v, base); err != nil {
			return err
		}
	} else {
		DisplayResult(op, v, duration, cfg.Verbose, base, out)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(v, op, duration, base, cfg.OutputFile); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
