// Command bigcalc is an arbitrary-precision integer calculator: add, sub,
// mul, div, mod, pow, and cmp on operands of unbounded size, plus a
// calibration sweep, an HTTP comparison/metrics server, and an interactive
// TUI that watches the schoolbook-vs-FFT multiply crossover live.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/app"
	"github.com/agbru/bignum/internal/config"
)

var rootCmd = &cobra.Command{
	Use:     "bigcalc",
	Short:   "Arbitrary-precision integer arithmetic",
	Long:    `bigcalc performs arbitrary-precision add/sub/mul/div/mod/pow/cmp on signed integers of unbounded magnitude.`,
	Version: app.Version,
}

func main() {
	rootCmd.AddCommand(
		newCalcCommand("add", "Add two integers"),
		newCalcCommand("sub", "Subtract two integers"),
		newCalcCommand("mul", "Multiply two integers (runs schoolbook and FFT, compares, and reports the winner)"),
		newCalcCommand("div", "Divide two integers, truncated toward zero"),
		newCalcCommand("mod", "Remainder of dividing two integers, sign of the dividend"),
		newCalcCommand("pow", "Raise the first integer to the second (binary squaring)"),
		newCalcCommand("cmp", "Compare two integers"),
		tuiCmd,
		calibrateCmd,
		serveCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCalcCommand builds a two-operand arithmetic subcommand sharing the
// flag set and Application wiring common to add/sub/mul/div/mod/pow/cmp.
func newCalcCommand(op, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			cfg.Op = op
			cfg.A, cfg.B = args[0], args[1]
			a := app.New(cfg, os.Stderr)
			os.Exit(a.Run(cmd.Context(), os.Stdout))
			return nil
		},
	}
	addCalcFlags(cmd)
	return cmd
}

// addCalcFlags registers the flags shared by every arithmetic subcommand.
func addCalcFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Int("base", 10, "input base for both operands (2..10, 16, or 256)")
	fs.Int("output-base", 10, "output base for the result (2..16 or 256)")
	fs.Int("fft-threshold", 0, "bit-length crossover above which mul dispatches to FFT (0 = adaptive)")
	fs.Duration("timeout", 30*time.Second, "maximum time to allow the computation to run")
	fs.StringP("output", "o", "", "also write the result to this file")
	fs.String("calibration-profile", "~/.bigcalc_calibration.toml", "path to a cached calibration profile")
	fs.String("memory-limit", "", "reject computations estimated to exceed this memory budget (e.g. 512MB)")
	fs.BoolP("verbose", "v", false, "show the full, untruncated result")
	fs.BoolP("details", "d", false, "show extra diagnostic detail")
	fs.BoolP("quiet", "q", false, "print only the bare result")
	fs.Bool("auto-calibrate", false, "run a quick calibration sweep before computing if no threshold is set")
}

// configFromFlags builds an AppConfig from a calc subcommand's flags,
// starting from config.Default() and letting Resolve layer environment
// overrides and the adaptive threshold estimate on top.
func configFromFlags(cmd *cobra.Command) (config.AppConfig, error) {
	cfg := config.Default()
	fs := cmd.Flags()

	cfg.InputBase, _ = fs.GetInt("base")
	cfg.OutputBase, _ = fs.GetInt("output-base")
	cfg.FFTThreshold, _ = fs.GetInt("fft-threshold")
	cfg.Timeout, _ = fs.GetDuration("timeout")
	cfg.OutputFile, _ = fs.GetString("output")
	cfg.CalibrationProfile, _ = fs.GetString("calibration-profile")
	cfg.MemoryLimit, _ = fs.GetString("memory-limit")
	cfg.Verbose, _ = fs.GetBool("verbose")
	cfg.Details, _ = fs.GetBool("details")
	cfg.Quiet, _ = fs.GetBool("quiet")
	cfg.AutoCalibrate, _ = fs.GetBool("auto-calibrate")

	return config.Resolve(cfg, fs), nil
}
