package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/bigerr"
	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/calibration"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/server"
	"github.com/agbru/bignum/internal/tui"
	"github.com/agbru/bignum/internal/ui"
)

// Version is stamped into --version output and the TUI header.
const Version = "0.1.0"

// Application is a single resolved bigcalc invocation: a fully
// precedence-resolved config plus the writer errors are reported on.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New builds an Application from an already-parsed config, applying the
// calibration-profile-or-adaptive-estimate step to any threshold the caller
// (cmd/bigcalc's cobra flags) left at its zero value.
func New(cfg config.AppConfig, errWriter io.Writer) *Application {
	if withProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = withProfile
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}
	return &Application{Config: cfg, ErrWriter: errWriter}
}

// Run executes the application in the mode selected by Config: calibration,
// server, TUI, or a single calculation.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(false)

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}

	a.Config = calibration.AutoCalibrate(a.Config, out)

	if a.Config.Serve {
		return a.runServe(ctx, out)
	}
	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runCalculate(ctx, out)
}

// runCalibration runs the full calibration sweep and reports the winning
// FFT threshold.
func (a *Application) runCalibration(_ context.Context, out io.Writer) int {
	calibration.Run(a.Config, a.Config.CalibrationProfile, false, out)
	return apperrors.ExitSuccess
}

// runServe starts the HTTP comparison/metrics server and blocks until
// canceled.
func (a *Application) runServe(ctx context.Context, _ io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewDefaultLogger()
	srv := server.New(a.Config.ServeAddr, logger)
	logger.Info("starting server", logging.String("addr", a.Config.ServeAddr))
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server exited", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.Config, Version)
}

// runCalculate parses the operands and dispatches to the operation named by
// Config.Op, timing execution and rendering the result through cli.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	base := a.Config.InputBase
	if base == 0 {
		base = 10
	}

	x, err := bignum.Parse(a.Config.A, base)
	if err != nil {
		return a.reportParseError("a", err)
	}
	y, err := bignum.Parse(a.Config.B, base)
	if err != nil {
		return a.reportParseError("b", err)
	}

	if exitCode, ok := a.checkMemoryBudget(a.Config.Op, x, y); !ok {
		return exitCode
	}

	outCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		OutputBase: a.Config.OutputBase,
	}

	switch a.Config.Op {
	case "mul":
		return a.runMulComparison(ctx, x, y, out)
	case "add":
		return a.runBinaryOp("add", out, outCfg, func() (*bignum.BigInt, error) {
			return x.Add(y), nil
		})
	case "sub":
		return a.runBinaryOp("sub", out, outCfg, func() (*bignum.BigInt, error) {
			return x.Sub(y), nil
		})
	case "div":
		return a.runBinaryOp("div", out, outCfg, func() (*bignum.BigInt, error) {
			return x.Div(y)
		})
	case "mod":
		return a.runBinaryOp("mod", out, outCfg, func() (*bignum.BigInt, error) {
			return x.Mod(y)
		})
	case "pow":
		return a.runBinaryOp("pow", out, outCfg, func() (*bignum.BigInt, error) {
			return x.Pow(y), nil
		})
	case "cmp":
		return a.runCompare(x, y, out)
	default:
		fmt.Fprintf(a.ErrWriter, "unknown operation %q\n", a.Config.Op)
		return apperrors.ExitErrorConfig
	}
}

// runBinaryOp times op and renders the result through
// cli.DisplayResultWithConfig, or reports op's error (typically
// bigerr.ErrDivisionByZero from Div/Mod).
func (a *Application) runBinaryOp(name string, out io.Writer, outCfg cli.OutputConfig, op func() (*bignum.BigInt, error)) int {
	start := time.Now()
	var result *bignum.BigInt
	var err error
	cli.WithSpinner(name+"...", a.Config.Quiet, func() {
		result, err = op()
	})
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
		if _, ok := err.(bigerr.DivisionByZeroError); ok {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitErrorGeneric
	}
	if err := cli.DisplayResultWithConfig(out, result, name, duration, outCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runMulComparison runs the schoolbook and FFT paths concurrently via
// orchestration.RunComparison and lets AnalyzeComparisonResults pick,
// verify, and present the winner.
func (a *Application) runMulComparison(ctx context.Context, x, y *bignum.BigInt, out io.Writer) int {
	var results []orchestration.CalculationResult
	cli.WithSpinner("mul (schoolbook vs fft)...", a.Config.Quiet, func() {
		results = orchestration.RunComparison(ctx, x, y)
	})
	presenter := cli.ResultPresenter{Base: a.Config.OutputBase}
	return orchestration.AnalyzeComparisonResults(results, presenter, out)
}

// runCompare prints the total order between x and y.
func (a *Application) runCompare(x, y *bignum.BigInt, out io.Writer) int {
	switch x.Cmp(y) {
	case -1:
		fmt.Fprintln(out, "a < b")
	case 0:
		fmt.Fprintln(out, "a = b")
	case 1:
		fmt.Fprintln(out, "a > b")
	}
	return apperrors.ExitSuccess
}

// checkMemoryBudget rejects the calculation before it runs if Config.MemoryLimit
// is set and op's estimated result size would exceed it. ok is false when the
// caller should return exitCode immediately.
func (a *Application) checkMemoryBudget(op string, x, y *bignum.BigInt) (exitCode int, ok bool) {
	limit, limited, err := metrics.ParseByteSize(a.Config.MemoryLimit)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
		return apperrors.ExitErrorConfig, false
	}
	if !limited {
		return apperrors.ExitSuccess, true
	}
	requested := metrics.EstimateResultBytes(op, x, y)
	if requested <= limit {
		return apperrors.ExitSuccess, true
	}
	collector := metrics.NewMemoryCollector()
	err = apperrors.MemoryError{
		Requested: requested,
		Available: collector.Snapshot().Sys,
		Limit:     limit,
	}
	fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
	return apperrors.ExitErrorGeneric, false
}

func (a *Application) reportParseError(operand string, err error) int {
	fmt.Fprintf(a.ErrWriter, "error parsing operand %q: %v\n", operand, err)
	return apperrors.ExitErrorConfig
}
