package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("read_timeout, write_timeout and shutdown_timeout must be > 0")
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	if s.LoginRateLimit < 0 {
		return fmt.Errorf("login_rate_limit must be >= 0 (got %d)", s.LoginRateLimit)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	if d.StatementTimeout < 0 {
		return fmt.Errorf("statement_timeout must be >= 0 (got %v)", d.StatementTimeout)
	}
	return nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}
