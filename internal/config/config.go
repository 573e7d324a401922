// Package config loads the user's tramo settings from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tramo/internal/models"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme section overlays the config
const ThemeFileEnv = "TRAMO_THEME_FILE"

// Config represents the application configuration
type Config struct {
	Project     ProjectConfig `yaml:"project"`
	Export      ExportConfig  `yaml:"export"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	Theme       Theme         `yaml:"theme"`
}

// ProjectConfig holds defaults for new projects
type ProjectConfig struct {
	DefaultDuration int `yaml:"default_duration"`
	// MaxDuration bounds the duration dialogs accept
	MaxDuration int `yaml:"max_duration"`
}

// ExportConfig holds export defaults. Pointers distinguish "unset" from
// an explicit false.
type ExportConfig struct {
	IncludeStartEnd *bool `yaml:"include_start_end"`
	CompressPDF     *bool `yaml:"compress_pdf"`
}

// IncludeStartEndColumns reports whether the PDF gets Start/End columns
func (e ExportConfig) IncludeStartEndColumns() bool {
	return e.IncludeStartEnd == nil || *e.IncludeStartEnd
}

// CompressPDFStreams reports whether PDF streams are compressed
func (e ExportConfig) CompressPDFStreams() bool {
	return e.CompressPDF == nil || *e.CompressPDF
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from TRAMO_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path; a missing file yields the defaults
func LoadFrom(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	loadThemeFile(&config)
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tramo", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tramo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Project.DefaultDuration == 0 {
		c.Project.DefaultDuration = models.DefaultDuration
	}
	if c.Project.MaxDuration == 0 {
		c.Project.MaxDuration = models.MaxDuration
	}
	if c.Export.IncludeStartEnd == nil {
		c.Export.IncludeStartEnd = boolPtr(true)
	}
	if c.Export.CompressPDF == nil {
		c.Export.CompressPDF = boolPtr(true)
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

func (c *Config) validate() error {
	if c.Project.MaxDuration < 1 {
		return fmt.Errorf("project.max_duration must be at least 1, got %d", c.Project.MaxDuration)
	}
	if c.Project.DefaultDuration < 1 || c.Project.DefaultDuration > c.Project.MaxDuration {
		return fmt.Errorf("project.default_duration must be between 1 and %d, got %d",
			c.Project.MaxDuration, c.Project.DefaultDuration)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
