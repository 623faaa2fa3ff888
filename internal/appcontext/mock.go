package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tolkit/cladegen/pkg/telomere"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	SettingsValue    Settings
	ReadSourceFunc   func(ctx context.Context, path string) ([]telomere.Observation, error)
	OutputFormatFunc func() string
	NoColorValue     bool
	VersionFunc      func() string
}

// Logger returns a logger using the mock function or a nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Settings returns SettingsValue.
func (m *Mock) Settings() Settings {
	return m.SettingsValue
}

// ReadSource returns observations using the mock function or nil.
func (m *Mock) ReadSource(ctx context.Context, path string) ([]telomere.Observation, error) {
	if m.ReadSourceFunc != nil {
		return m.ReadSourceFunc(ctx, path)
	}
	return nil, nil
}

// OutputFormat returns the format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// NoColor returns NoColorValue.
func (m *Mock) NoColor() bool {
	return m.NoColorValue
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
