package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/app"
	"github.com/agbru/bignum/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP comparison and Prometheus metrics server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.Serve = true
		cfg.ServeAddr, _ = cmd.Flags().GetString("addr")
		a := app.New(cfg, os.Stderr)
		os.Exit(a.Run(cmd.Context(), os.Stdout))
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":9090", "address to listen on")
}
