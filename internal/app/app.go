// Package app wires configuration, logging and the run modes of ui512calc
// together. It owns the process lifecycle: signal handling, timeouts and
// exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/widebit/ui512"
	"github.com/widebit/ui512/internal/cli"
	"github.com/widebit/ui512/internal/config"
	apperrors "github.com/widebit/ui512/internal/errors"
	"github.com/widebit/ui512/internal/logging"
	"github.com/widebit/ui512/internal/server"
)

// Application represents the ui512calc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "ui512calc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if a.Config.ServeAddr != "" {
		return a.runServe(ctx)
	}
	if a.Config.SelfTest > 0 {
		return a.runSelfTest(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

// runServe runs the HTTP API until interrupted.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.ServeAddr, a.Logger)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// handleRunError maps an error to its exit code, printing it for the user.
func (a *Application) handleRunError(err error) int {
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	switch {
	case errors.Is(err, ui512.ErrDivideByZero):
		return apperrors.ExitErrorDivideByZero
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case errors.As(err, new(apperrors.MismatchError)):
		return apperrors.ExitErrorMismatch
	case errors.As(err, new(apperrors.ConfigError)):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}

// styles returns the terminal styles for the configured color mode.
func (a *Application) styles() cli.Styles {
	noColor := a.Config.NoColor || os.Getenv("NO_COLOR") != ""
	return cli.NewStyles(noColor)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
