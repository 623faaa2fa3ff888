// Package app provides the application context and dependency management
// for the cladegen CLI. Configuration, logging and source loading are
// centralized here and handed to commands through appcontext.Interface.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tolkit/cladegen/internal/appcontext"
	"github.com/tolkit/cladegen/internal/source"
	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/logging"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// App represents the cladegen application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Observations already read, keyed by path
	mu      sync.RWMutex
	sources map[string][]telomere.Observation
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		sources: make(map[string][]telomere.Observation),
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Settings returns the generation defaults.
func (a *App) Settings() appcontext.Settings {
	return appcontext.Settings{
		Input:        a.config.Input,
		Package:      a.config.Package,
		CladeColumn:  a.config.CladeColumn,
		RepeatColumn: a.config.RepeatColumn,
		SortClades:   a.config.SortClades,
	}
}

// ReadSource reads observations from path, falling back to the configured
// input. Results are cached per path for the lifetime of the app.
func (a *App) ReadSource(ctx context.Context, path string) ([]telomere.Observation, error) {
	if path == "" {
		path = a.config.Input
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	obs, ok := a.sources[path]
	a.mu.RUnlock()
	if ok {
		return obs, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if obs, ok := a.sources[path]; ok {
		return obs, nil
	}

	reader := &source.Reader{
		CladeColumn:  a.config.CladeColumn,
		RepeatColumn: a.config.RepeatColumn,
	}
	obs, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("source", path).
		Int("observations", len(obs)).
		Msg("Read source table")

	a.sources[path] = obs
	return obs, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
