// Package app wires configuration, the engine and the chosen front end
// (HTTP server or interactive prompt) into a runnable application.
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

	"github.com/agbru/mathsvc/internal/cli"
	"github.com/agbru/mathsvc/internal/config"
	"github.com/agbru/mathsvc/internal/engine"
	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/server"
	"github.com/agbru/mathsvc/internal/ui"
)

// Application represents the mathsvc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In feeds the interactive prompt.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used by the interactive prompt.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "mathsvc"
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
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger := a.Config.Logger(a.ErrWriter)
	eng := engine.New(EngineOptions(a.Config, logger))

	cli.PrintServiceConfig(a.Config, out)

	if a.Config.REPL {
		return a.runREPL(eng, out)
	}
	return a.runServer(ctx, eng, logger)
}

// runREPL starts the interactive prompt on a.In.
func (a *Application) runREPL(eng *engine.Engine, out io.Writer) int {
	repl := cli.NewREPL(eng, cli.REPLConfig{ShowSpinner: true})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runServer serves HTTP until ctx is canceled or SIGINT/SIGTERM arrives.
func (a *Application) runServer(ctx context.Context, eng *engine.Engine, logger logging.Logger) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(eng, ServerConfig(a.Config), logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	logger.Info("server stopped")
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps a New error to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	default:
		var ce apperrors.ConfigError
		if errors.As(err, &ce) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
}
