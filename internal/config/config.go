package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcncl/formatx/internal/models"
	"gopkg.in/yaml.v3"
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultDebounce is how long the watcher waits for a file to settle
const DefaultDebounce = 100 * time.Millisecond

// Config represents the complete configuration for formatx
type Config struct {
	InputFormat  models.Format `yaml:"input_format"`
	OutputFormat models.Format `yaml:"output_format"`
	AutoDetect   bool          `yaml:"auto_detect"`
	Minify       bool          `yaml:"minify"`
	Strict       bool          `yaml:"strict"`
	Color        string        `yaml:"color"`
	Watch        WatchConfig   `yaml:"watch"`
	Dev          DevConfig     `yaml:"dev"`
}

// WatchConfig controls the file watcher
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// Overrides holds values given on the command line. Empty strings and
// false booleans leave the loaded configuration untouched.
type Overrides struct {
	InputFormat  string
	OutputFormat string
	Color        string
	Minify       bool
	Strict       bool
	Debug        bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		InputFormat:  models.DefaultInputFormat,
		OutputFormat: models.DefaultOutputFormat,
		AutoDetect:   true,
		Minify:       false,
		Strict:       false,
		Color:        ColorAuto,
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".formatx.yml", ".formatx.yaml", "formatx.yml", "formatx.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate normalizes format names and checks every field. Format aliases
// such as "yml" or "Plain Text" are rewritten to their canonical tags.
func (c *Config) Validate() error {
	in, err := models.ParseFormat(string(c.InputFormat))
	if err != nil {
		return fmt.Errorf("input_format: %w", err)
	}
	c.InputFormat = in

	out, err := models.ParseFormat(string(c.OutputFormat))
	if err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	c.OutputFormat = out

	switch strings.ToLower(c.Color) {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
		c.Color = strings.ToLower(c.Color)
	default:
		return fmt.Errorf("color: must be one of %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %s", c.Watch.Debounce)
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = DefaultDebounce
	}

	return nil
}

// LoadConfigWithCLI loads config with CLI argument precedence
// An empty configPath uses defaults only
func LoadConfigWithCLI(configPath string, cli Overrides) (*Config, error) {
	// Start with defaults
	cfg := NewConfig()

	// Load config file if provided
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli.InputFormat != "" {
		cfg.InputFormat = models.Format(cli.InputFormat)
	}
	if cli.OutputFormat != "" {
		cfg.OutputFormat = models.Format(cli.OutputFormat)
	}
	if cli.Color != "" {
		cfg.Color = cli.Color
	}

	// Boolean flags can only switch a feature on
	cfg.Minify = cfg.Minify || cli.Minify
	cfg.Strict = cfg.Strict || cli.Strict
	cfg.Dev.Debug = cfg.Dev.Debug || cli.Debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
