package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, config.Input)
	assert.Equal(t, "clades", config.Package)
	assert.Equal(t, "Order", config.CladeColumn)
	assert.Equal(t, "Telomeric repeat", config.RepeatColumn)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Empty(t, config.ConfigFile)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLADEGEN_INPUT", "/data/table.csv")
	t.Setenv("CLADEGEN_CLADE_COLUMN", "Family")
	t.Setenv("CLADEGEN_SORT_CLADES", "true")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/data/table.csv", config.Input)
	assert.Equal(t, "Family", config.CladeColumn)
	assert.True(t, config.SortClades)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	// Registered so the variable set by .env is removed after the test
	t.Setenv("CLADEGEN_PACKAGE", "")
	require.NoError(t, os.Unsetenv("CLADEGEN_PACKAGE"))
	require.NoError(t, os.WriteFile(".env", []byte("CLADEGEN_PACKAGE=fromdotenv\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", config.Package)
}

func TestLoadConfigFileInWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(".cladegen.yaml", []byte("repeat_column: Repeat\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Repeat", config.RepeatColumn)
	assert.Equal(t, ".cladegen.yaml", filepath.Base(config.ConfigFile))
}

func TestLoadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: custom\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", config.Package)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("same column twice", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("CLADEGEN_REPEAT_COLUMN", "Order")

		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format, "empty flag keeps configured format")
	assert.Equal(t, "warn", config.LogLevel)

	config.UpdateFromFlags(false, false, false, "json", "trace")
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "trace", config.LogLevel)
}
