package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/packer/internal/config"
	"github.com/eugenenazirov/packer/internal/input"
	"github.com/eugenenazirov/packer/internal/packer"
)

// App encapsulates the application dependencies.
type App struct {
	source input.Source
	packer packer.Packer
	logger *zap.Logger
	out    io.Writer
}

// Option configures App behaviour.
type Option func(*App)

// WithSource overrides the input source, primarily for tests.
func WithSource(source input.Source) Option {
	return func(a *App) {
		a.source = source
	}
}

// WithOutput overrides where results are printed. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(a *App) {
		a.out = out
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		source: input.NewFileSource(cfg.ResourceDirs...),
		packer: packer.New(
			packer.WithLogger(logger),
			packer.WithWorkers(cfg.Workers),
		),
		logger: logger,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run packs every line of the input at path, prints the result and returns it.
func (a *App) Run(ctx context.Context, path string) (string, error) {
	logger := a.logger.With(zap.String("run_id", uuid.NewString()))
	start := time.Now()

	data, err := a.source.Read(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	logger.Debug("input loaded", zap.String("path", data.Path), zap.Int("lines", len(data.Lines)))

	report, err := a.packer.PackLines(ctx, data.Lines)
	if err != nil {
		return "", err
	}

	result := report.Output()
	if _, err := io.WriteString(a.out, result); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	logger.Info("packing completed",
		zap.String("path", data.Path),
		zap.Int("lines", len(report.Lines)),
		zap.Int("rejected", report.Rejected()),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// Pack resolves path against the working directory, prints the packing
// result to stdout and returns it.
func Pack(path string) (string, error) {
	cfg := config.Config{ResourceDirs: []string{"."}, Workers: 1}
	return New(cfg, nil).Run(context.Background(), path)
}
