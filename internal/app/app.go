// Package app implements the application layer for iconsync.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/iconsync/internal/engine/synchronizer"
	"go.trai.ch/iconsync/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       *synchronizer.Synchronizer
	logger       ports.Logger
	telemetry    ports.Telemetry
	out          io.Writer
}

// New creates a new App instance writing progress to stdout.
func New(
	loader ports.ConfigLoader,
	engine *synchronizer.Synchronizer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		logger:       logger,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// WithOutput redirects progress lines and the summary to w.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Root is the project root holding the icon directories.
	Root string
	// ConfigPath is an explicit configuration file. Empty means the
	// optional iconsync.yaml in Root.
	ConfigPath string
	// Verbose lists every recorded conversion step after the summary.
	Verbose bool
}

// Run synchronizes the icon directories under opts.Root and prints the summary.
// Per-file failures are part of the summary and do not produce an error.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, "failed to close telemetry")
		}
	}()

	// 1. Load the settings
	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve project root"), "root", opts.Root)
	}

	settings, err := a.configLoader.Load(root, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Run the synchronizer
	printer := output.NewPrinter(output.New(a.out))
	report, err := a.engine.Run(ctx, domain.NewLayout(root, settings), synchronizer.OptionsFrom(settings), printer)
	if err != nil {
		return zerr.Wrap(err, "synchronization failed")
	}

	// 3. Summarize
	printer.Summary(report)
	if opts.Verbose {
		printer.Steps(a.telemetry.Steps())
	}
	if n := len(report.Failed); n > 0 {
		a.logger.Warn(fmt.Sprintf("%d files failed to convert", n))
	}
	return nil
}
