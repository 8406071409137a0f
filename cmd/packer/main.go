package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/packer/internal/application"
	"github.com/eugenenazirov/packer/internal/config"
	"github.com/eugenenazirov/packer/internal/logging"
)

var notifyContext = signal.NotifyContext

func main() {
	ctx, stop := signalContext()
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			fmt.Fprintf(os.Stderr, "packer: %v\n", err)
		}
		os.Exit(1)
	}
}

// loggedError marks a failure that has already been written to the logger.
type loggedError struct {
	err error
}

func (e loggedError) Error() string { return e.err.Error() }

func (e loggedError) Unwrap() error { return e.err }

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("packer", "Package Packer - selects the things to send in each package")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	resourceDirs := kingpinApp.Flag("resource-dir", "Directory searched for the input file (repeatable)").Strings()
	workersFlag := kingpinApp.Flag("workers", "Lines packed concurrently (set 0 to use configuration)").Default("0").Int()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json or console)").String()
	path := kingpinApp.Arg("path", "Input file describing the packages").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile:   *configFile,
		ResourceDirs: *resourceDirs,
	}

	if *workersFlag > 0 {
		overrides.Workers = workersFlag
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logEncoding != "" {
		overrides.LogEncoding = logEncoding
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger, application.WithOutput(stdout))
	if _, err := app.Run(ctx, *path); err != nil {
		logger.Error("packing failed", zap.String("path", *path), zap.Error(err))
		return loggedError{err: err}
	}
	return nil
}
