package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/app"
	"github.com/agbru/bignum/internal/config"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Benchmark FFT thresholds on this machine and cache the winner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.Calibrate = true
		cfg.CalibrationProfile, _ = cmd.Flags().GetString("calibration-profile")
		a := app.New(cfg, os.Stderr)
		os.Exit(a.Run(cmd.Context(), os.Stdout))
		return nil
	},
}

func init() {
	calibrateCmd.Flags().String("calibration-profile", "~/.bigcalc_calibration.toml", "path to write the calibration profile")
}
