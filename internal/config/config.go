// Package config loads the classpage YAML configuration.
package config

import (
	"os"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root of a classpage configuration file.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RenderConfig controls how pages are rendered.
type RenderConfig struct {
	Extension       string `yaml:"extension"`        // page file extension, including the dot
	PackageIndex    string `yaml:"package_index"`    // link target of the package line
	ImplicitRoot    string `yaml:"implicit_root"`    // ancestor left out of hierarchy lines
	SummarizeFields bool   `yaml:"summarize_fields"` // add a field table to the summary
	Frontmatter     bool   `yaml:"frontmatter"`      // prepend title/uid/fingerprint frontmatter
}

// OutputConfig controls where pages are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // remove existing pages before generating
}

// BuildConfig controls batch generation.
type BuildConfig struct {
	Concurrency int  `yaml:"concurrency"` // 0 means GOMAXPROCS
	Strict      bool `yaml:"strict"`      // fail pages that dropped members
}

// LoggingConfig controls the slog handler set up by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Prometheus textfile written after each run; empty disables
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = NewDefaultApplier().ApplyDefaults(cfg)
	return cfg
}

// Load reads a configuration file. Variables from .env/.env.local are loaded
// first and ${VAR} references in the file are expanded before parsing.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").WithContext("path", configPath).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").WithContext("path", configPath).Build()
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes, normalizes, defaults and validates configuration YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Build()
	}
	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	if err := NewDefaultApplier().ApplyDefaults(&cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to apply defaults").Build()
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").WithContext("path", configPath).Build()
	}
	return nil
}
