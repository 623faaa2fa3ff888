// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with Mock.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tolkit/cladegen/pkg/telomere"
)

// Settings are the generation defaults resolved from config files,
// environment variables and .env files. Command flags override them.
type Settings struct {
	// Input is the path of the curated table.
	Input string
	// Package is the package clause of generated files.
	Package string
	// CladeColumn and RepeatColumn name the source columns.
	CladeColumn  string
	RepeatColumn string
	// SortClades orders clades by name instead of first appearance.
	SortClades bool
}

// Interface defines what commands need from the application.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Settings returns a copy of the generation defaults.
	Settings() Settings

	// ReadSource reads observations from path, or from Settings().Input when
	// path is empty, using the configured column names.
	ReadSource(ctx context.Context, path string) ([]telomere.Observation, error)

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string
}
