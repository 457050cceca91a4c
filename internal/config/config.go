package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the day planner application
type Config struct {
	Database    DatabaseConfig
	Planner     PlannerConfig
	Validation  ValidationConfig
	Auth        AuthConfig
	Web         WebConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"PLANNER_DB_DIR"`
	Filename       string        `env:"PLANNER_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"PLANNER_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"PLANNER_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"PLANNER_DB_DIR_PERMISSIONS"`
}

// PlannerConfig holds planner behavior configuration
type PlannerConfig struct {
	Timezone    string `env:"PLANNER_TIMEZONE"`
	DefaultDate string `env:"PLANNER_DEFAULT_DATE"` // empty means today
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"PLANNER_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"PLANNER_VALIDATION_TITLE_MAX"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	SessionTTL        time.Duration `env:"PLANNER_AUTH_SESSION_TTL"`
	PasswordMinLength int           `env:"PLANNER_AUTH_PASSWORD_MIN"`
}

// WebConfig holds HTTP server configuration
type WebConfig struct {
	Host string `env:"PLANNER_WEB_HOST"`
	Port int    `env:"PLANNER_WEB_PORT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"PLANNER_APP_TIMEOUT"`
	Verbose bool          `env:"PLANNER_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".planner")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "planner.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Planner: PlannerConfig{
			Timezone: "Local",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Auth: AuthConfig{
			SessionTTL:        12 * time.Hour,
			PasswordMinLength: 8,
		},
		Web: WebConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// GetListenAddr returns the host:port the web server binds to
func (c *Config) GetListenAddr() string {
	return c.Web.Host + ":" + strconv.Itoa(c.Web.Port)
}

// GetLocation resolves the configured timezone. "Local" or an empty value
// means the process timezone.
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Planner.Timezone == "" || c.Planner.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Planner.Timezone)
	if err != nil {
		return nil, &ConfigError{Field: "planner.timezone", Message: "unknown timezone " + c.Planner.Timezone}
	}
	return loc, nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("PLANNER_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("PLANNER_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("PLANNER_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("PLANNER_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("PLANNER_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Planner configuration
	if tz := os.Getenv("PLANNER_TIMEZONE"); tz != "" {
		c.Planner.Timezone = tz
	}
	if date := os.Getenv("PLANNER_DEFAULT_DATE"); date != "" {
		c.Planner.DefaultDate = date
	}

	// Validation configuration
	if minLen := os.Getenv("PLANNER_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("PLANNER_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Auth configuration
	if ttl := os.Getenv("PLANNER_AUTH_SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Auth.SessionTTL = d
		}
	}
	if minLen := os.Getenv("PLANNER_AUTH_PASSWORD_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Auth.PasswordMinLength = n
		}
	}

	// Web configuration
	if host := os.Getenv("PLANNER_WEB_HOST"); host != "" {
		c.Web.Host = host
	}
	if port := os.Getenv("PLANNER_WEB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Web.Port = p
		}
	}

	// Application configuration
	if timeout := os.Getenv("PLANNER_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("PLANNER_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate planner configuration
	if _, err := c.GetLocation(); err != nil {
		return err
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate auth configuration
	if c.Auth.SessionTTL <= 0 {
		return &ConfigError{Field: "auth.session_ttl", Message: "session TTL must be positive"}
	}
	if c.Auth.PasswordMinLength < 1 {
		return &ConfigError{Field: "auth.password_min_length", Message: "password minimum length must be at least 1"}
	}

	// Validate web configuration
	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return &ConfigError{Field: "web.port", Message: "port must be between 1 and 65535"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
