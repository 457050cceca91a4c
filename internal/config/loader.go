package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromFile(DefaultConfigPath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfigPath returns the config file path: PLANNER_CONFIG if set,
// otherwise ~/.planner/config.yaml.
func DefaultConfigPath() string {
	if path := os.Getenv("PLANNER_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".planner", "config.yaml")
}

// fileConfig mirrors the YAML config file layout. Durations are strings in
// Go duration syntax ("10s", "1h"). Absent keys leave defaults untouched.
type fileConfig struct {
	Database struct {
		Dir          *string `yaml:"dir"`
		Filename     *string `yaml:"filename"`
		QueryTimeout *string `yaml:"query_timeout"`
		WriteTimeout *string `yaml:"write_timeout"`
	} `yaml:"database"`
	Planner struct {
		Timezone    *string `yaml:"timezone"`
		DefaultDate *string `yaml:"default_date"`
	} `yaml:"planner"`
	Validation struct {
		TitleMinLength *int `yaml:"title_min_length"`
		TitleMaxLength *int `yaml:"title_max_length"`
	} `yaml:"validation"`
	Auth struct {
		SessionTTL        *string `yaml:"session_ttl"`
		PasswordMinLength *int    `yaml:"password_min_length"`
	} `yaml:"auth"`
	Web struct {
		Host *string `yaml:"host"`
		Port *int    `yaml:"port"`
	} `yaml:"web"`
	Application struct {
		Timeout *string `yaml:"timeout"`
		Verbose *bool   `yaml:"verbose"`
	} `yaml:"application"`
}

// LoadFromFile overlays configuration from a YAML file. A missing file is
// not an error; a malformed one is.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &ConfigError{Field: "config_file", Message: "cannot read " + path + ": " + err.Error()}
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &ConfigError{Field: "config_file", Message: "cannot parse " + path + ": " + err.Error()}
	}

	if file.Database.Dir != nil {
		c.Database.Dir = *file.Database.Dir
	}
	if file.Database.Filename != nil {
		c.Database.Filename = *file.Database.Filename
	}
	if err := setDuration(&c.Database.QueryTimeout, file.Database.QueryTimeout, "database.query_timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.Database.WriteTimeout, file.Database.WriteTimeout, "database.write_timeout"); err != nil {
		return err
	}
	if file.Planner.Timezone != nil {
		c.Planner.Timezone = *file.Planner.Timezone
	}
	if file.Planner.DefaultDate != nil {
		c.Planner.DefaultDate = *file.Planner.DefaultDate
	}
	if file.Validation.TitleMinLength != nil {
		c.Validation.TitleMinLength = *file.Validation.TitleMinLength
	}
	if file.Validation.TitleMaxLength != nil {
		c.Validation.TitleMaxLength = *file.Validation.TitleMaxLength
	}
	if err := setDuration(&c.Auth.SessionTTL, file.Auth.SessionTTL, "auth.session_ttl"); err != nil {
		return err
	}
	if file.Auth.PasswordMinLength != nil {
		c.Auth.PasswordMinLength = *file.Auth.PasswordMinLength
	}
	if file.Web.Host != nil {
		c.Web.Host = *file.Web.Host
	}
	if file.Web.Port != nil {
		c.Web.Port = *file.Web.Port
	}
	if err := setDuration(&c.Application.Timeout, file.Application.Timeout, "application.timeout"); err != nil {
		return err
	}
	if file.Application.Verbose != nil {
		c.Application.Verbose = *file.Application.Verbose
	}

	return nil
}

func setDuration(dst *time.Duration, value *string, field string) error {
	if value == nil {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return &ConfigError{Field: field, Message: "invalid duration " + *value}
	}
	*dst = d
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Planner overrides
	Timezone    *string
	DefaultDate *string

	// Validation overrides
	TitleMinLength *int
	TitleMaxLength *int

	// Web overrides
	WebHost *string
	WebPort *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Planner overrides
	if overrides.Timezone != nil {
		config.Planner.Timezone = *overrides.Timezone
	}
	if overrides.DefaultDate != nil {
		config.Planner.DefaultDate = *overrides.DefaultDate
	}

	// Validation overrides
	if overrides.TitleMinLength != nil {
		config.Validation.TitleMinLength = *overrides.TitleMinLength
	}
	if overrides.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}

	// Web overrides
	if overrides.WebHost != nil {
		config.Web.Host = *overrides.WebHost
	}
	if overrides.WebPort != nil {
		config.Web.Port = *overrides.WebPort
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
