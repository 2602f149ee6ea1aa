package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/nttcalc/internal/config"
	apperrors "github.com/agbru/nttcalc/internal/errors"
	"github.com/agbru/nttcalc/internal/logging"
	"github.com/agbru/nttcalc/internal/ntt"
	"github.com/agbru/nttcalc/internal/orchestration"
	"github.com/agbru/nttcalc/internal/server"
	"github.com/agbru/nttcalc/internal/ui"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/agbru/nttcalc/internal/app.Version=...".
var Version = "dev"

// Application represents the nttcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	// convolvers overrides the default path selection when non-nil.
	convolvers []ntt.Convolver
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithConvolvers sets custom convolution paths for the application,
// bypassing the default selection. Used by tests.
func WithConvolvers(convolvers ...ntt.Convolver) AppOption {
	return func(a *Application) { a.convolvers = convolvers }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument list including the program name.
//   - errWriter: The writer for usage and parse error output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "nttcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptiveThresholds(cfg)
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The base context for the run.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MetricsAddr != "" {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		ctx = runCtx
		go func() {
			metricsLogger := logging.NewLogger(a.ErrWriter, "metrics")
			if err := server.New(a.Config.MetricsAddr, metricsLogger).Run(runCtx); err != nil {
				metricsLogger.Error("metrics server stopped", err)
			}
		}()
	}

	if a.Config.Mode() == config.ModeMultiply {
		return a.runMultiply(ctx, out)
	}
	return a.runConvolve(ctx, out)
}

// selectConvolvers returns the convolution paths for this run.
func (a *Application) selectConvolvers() []ntt.Convolver {
	if a.convolvers != nil {
		return a.convolvers
	}
	return orchestration.ConvolversToRun(a.Config.Verify)
}

// reportError writes an error through the standard handler and returns its
// exit code.
func (a *Application) reportError(err error) int {
	return apperrors.HandleConvolutionError(err, a.Config.Timeout, a.ErrWriter, cliColors())
}

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the application version.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "nttcalc %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
