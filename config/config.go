// Package config loads the generator settings from a config file, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. SQLMONDECK_OUTPUT_PATH.
	EnvPrefix = "SQLMONDECK"
	// FileName is the config file base name searched for when no explicit path is given.
	FileName = "sqlmondeck"

	DefaultTemplatePath = "templates/default.pptx"
	DefaultOutputPath   = "SQLServerMonitoring-Presentation.pptx"
)

// ErrMissingPath is returned by Validate when a required path is empty.
var ErrMissingPath = errors.New("required path not set")

// Config structure
type Config struct {
	ConfigFile   string `mapstructure:"-"`             // File the settings were read from, empty when none
	TemplatePath string `mapstructure:"template_path"` // Template presentation providing the theme
	StagingDir   string `mapstructure:"staging_dir"`   // Where the template and the deck are staged
	OutputPath   string `mapstructure:"output_path"`   // Final destination of the deck
	Title        string `mapstructure:"title"`         // Document title, defaults to the deck title
	Author       string `mapstructure:"author"`        // Document creator, defaults to the deck creator
	HandoutPath  string `mapstructure:"handout_path"`  // PDF handout is written here when set
	OutlinePath  string `mapstructure:"outline_path"`  // Outline workbook is written here when set
	LogDir       string `mapstructure:"log_dir"`       // Run log directory, logging is off when empty
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("template_path", DefaultTemplatePath)
	v.SetDefault("staging_dir", filepath.Join(os.TempDir(), "sqlmondeck"))
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("title", "")
	v.SetDefault("author", "")
	v.SetDefault("handout_path", "")
	v.SetDefault("outline_path", "")
	v.SetDefault("log_dir", "")
}

// Load reads the configuration. An explicit path must exist; otherwise sqlmondeck.{yaml,json,toml}
// is looked up in the working directory and in $HOME/.config/sqlmondeck, and may be absent.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}

// Validate checks the settings a run cannot do without.
func (c *Config) Validate() error {
	if c.TemplatePath == "" {
		return fmt.Errorf("%w: template_path", ErrMissingPath)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output_path", ErrMissingPath)
	}
	if c.StagingDir == "" {
		return fmt.Errorf("%w: staging_dir", ErrMissingPath)
	}
	return nil
}

// StagedDeckPath is the staging location of the generated deck.
func (c *Config) StagedDeckPath() string {
	return filepath.Join(c.StagingDir, filepath.Base(c.OutputPath))
}
