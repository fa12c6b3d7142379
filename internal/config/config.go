package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level dompet.yaml configuration.
type Config struct {
	Timezone    string        `yaml:"timezone"`
	TitleMaxLen int           `yaml:"title_max_len"`
	Log         LogConfig     `yaml:"log"`
	Model       ModelConfig   `yaml:"model"`
	Storage     StorageConfig `yaml:"storage"`
	Batch       BatchConfig   `yaml:"batch"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// ModelConfig controls the optional Gemini draft model.
type ModelConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Name        string        `yaml:"name"`
	Backend     string        `yaml:"backend"` // gemini or vertex
	APIKey      string        `yaml:"-"`       // environment only
	Project     string        `yaml:"project,omitempty"`
	Location    string        `yaml:"location,omitempty"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float32       `yaml:"temperature"`
}

// StorageConfig controls the Cloud Storage client used for gs:// batch input.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	Anonymous bool   `yaml:"anonymous"`
}

// BatchConfig controls batch parsing.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// Load reads a dompet.yaml file from disk on top of the defaults, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
// with environment overrides applied.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg := Default()
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults. The model stays off until
// a key or project is configured.
func Default() *Config {
	return &Config{
		Timezone:    "Asia/Jakarta",
		TitleMaxLen: 50,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Model: ModelConfig{
			Name:        "gemini-2.5-flash",
			Backend:     "gemini",
			Timeout:     8 * time.Second,
			Temperature: 0.1,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv
// outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("DOMPET_TIMEZONE"); ok && v != "" {
		c.Timezone = v
	}
	if v, ok := lookup("DOMPET_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("DOMPET_MODEL"); ok && v != "" {
		c.Model.Name = v
	}
	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v, ok := lookup(key); ok && v != "" {
			c.Model.APIKey = v
			c.Model.Enabled = true
			break
		}
	}
	if v, ok := lookup("GOOGLE_CLOUD_PROJECT"); ok && v != "" {
		c.Model.Project = v
	}
	if v, ok := lookup("GOOGLE_CLOUD_LOCATION"); ok && v != "" {
		c.Model.Location = v
	}
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.TitleMaxLen <= 0 {
		return fmt.Errorf("title_max_len must be positive, got %d", c.TitleMaxLen)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers)
	}
	switch strings.ToLower(c.Model.Backend) {
	case "gemini", "vertex":
	default:
		return fmt.Errorf("unknown model backend %q", c.Model.Backend)
	}
	if c.Model.Enabled && strings.EqualFold(c.Model.Backend, "vertex") && c.Model.Project == "" {
		return fmt.Errorf("model backend vertex needs a project")
	}
	return nil
}

// Location returns the configured time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
