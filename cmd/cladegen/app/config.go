package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tolkit/cladegen/internal/source"
	"github.com/tolkit/cladegen/pkg/emitter"
	"github.com/tolkit/cladegen/pkg/errors"
)

// EnvPrefix prefixes every environment variable read through viper.
const EnvPrefix = "CLADEGEN"

// DefaultInput is the source table read when nothing else is configured.
const DefaultInput = "./curated.csv"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Generation settings
	Input        string
	Package      string
	CladeColumn  string
	RepeatColumn string
	SortClades   bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (CLADEGEN_*)
//  3. .env files
//  4. Config file (configFile, or .cladegen.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", DefaultInput)
	v.SetDefault("package", emitter.DefaultPackage)
	v.SetDefault("clade_column", source.DefaultCladeColumn)
	v.SetDefault("repeat_column", source.DefaultRepeatColumn)
	v.SetDefault("sort_clades", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "cannot read "+configFile, err)
		}
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".cladegen")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		// A missing default config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("file", "cannot parse config", err)
			}
		}
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		Input:        v.GetString("input"),
		Package:      v.GetString("package"),
		CladeColumn:  v.GetString("clade_column"),
		RepeatColumn: v.GetString("repeat_column"),
		SortClades:   v.GetBool("sort_clades"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.CladeColumn == config.RepeatColumn {
		return nil, errors.NewConfigError("columns", "clade_column and repeat_column must differ", nil)
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so that
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables that are already set are left untouched.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
