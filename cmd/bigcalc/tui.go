package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/app"
	"github.com/agbru/bignum/internal/config"
)

// defaultTUIOperandDigits is the decimal digit count of the demo operands
// the dashboard multiplies when the user doesn't supply --a/--b; large
// enough that the FFT path is a live contender against schoolbook on most
// hardware.
const defaultTUIOperandDigits = 500000

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long:  `tui multiplies a pair of large operands under both the schoolbook and FFT paths and plots live which one wins and how long it took.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.TUI = true
		cfg.FFTThreshold, _ = cmd.Flags().GetInt("fft-threshold")
		cfg.A, _ = cmd.Flags().GetString("a")
		cfg.B, _ = cmd.Flags().GetString("b")
		if cfg.A == "" {
			cfg.A = strings.Repeat("9", defaultTUIOperandDigits)
		}
		if cfg.B == "" {
			cfg.B = cfg.A
		}
		a := app.New(cfg, os.Stderr)
		os.Exit(a.Run(cmd.Context(), os.Stdout))
		return nil
	},
}

func init() {
	tuiCmd.Flags().Int("fft-threshold", 0, "bit-length crossover above which mul dispatches to FFT (0 = adaptive)")
	tuiCmd.Flags().String("a", "", "first operand (decimal); defaults to a large demo repunit")
	tuiCmd.Flags().String("b", "", "second operand (decimal); defaults to the same value as --a")
}
