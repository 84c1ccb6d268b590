// Package cli holds the dependencies shared by the command-line commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/sidepanel/internal/cli/styles"
	"github.com/bnema/sidepanel/internal/domain/build"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// Options select the configuration file and how chatty commands are.
type Options struct {
	// ConfigFile replaces the XDG lookup when set.
	ConfigFile string
	// Verbose logs to stderr at the configured level.
	Verbose bool
}

// NewApp loads the configuration and prepares the logger. Commands stay
// quiet unless Verbose is set or SIDEPANEL_LOG_LEVEL asks for output.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerForFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := zerolog.Nop()
	logCleanup := func() {}
	if opts.Verbose || os.Getenv("SIDEPANEL_LOG_LEVEL") != "" {
		logger, logCleanup, err = logging.NewWithFile(
			logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
			logging.FileConfig{Enabled: false, WriteToStderr: true},
		)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext replaces the application context, e.g. to attach a logger
// with file output for an interactive run.
func (a *App) WithContext(ctx context.Context, cleanup func()) {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.ctx = ctx
	a.logCleanup = cleanup
}
