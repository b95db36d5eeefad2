// Package config provides utilities for managing the line filter configuration
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"titlecase/constants/envvar"
	"titlecase/constants/zapkey"
	"titlecase/log"
)

const (
	defaultEnvFile  = ".env"
	defaultWorkers  = 1
	defaultLogLevel = zapcore.WarnLevel
)

// Config represents the configuration for the line filter
type Config struct {
	Workers  int
	LogLevel zapcore.Level
}

// NewConfig creates a new configuration struct from the environment.
// A dotenv file is loaded first when one exists; it never overrides variables
// that are already set.
func NewConfig(opts ...Option) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	c := &Config{
		Workers:  defaultWorkers,
		LogLevel: defaultLogLevel,
	}
	if raw := os.Getenv(envvar.Workers); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", envvar.Workers, raw, err)
		}
		c.Workers = workers
	}
	if raw := os.Getenv(envvar.LogLevel); raw != "" {
		lvl, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", envvar.LogLevel, raw, err)
		}
		c.LogLevel = lvl
	}
	if log.VerboseLogsEnabled(context.Background()) {
		c.LogLevel = zapcore.DebugLevel
	}

	for _, opt := range opts {
		opt(c)
	}

	// Validate config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate all configuration
func (c *Config) Validate() error {
	var problems []string
	if c.Workers < 1 {
		problems = append(problems, fmt.Sprintf("workers must be at least 1, got %d", c.Workers))
	}
	if c.LogLevel < zapcore.DebugLevel || c.LogLevel > zapcore.FatalLevel {
		problems = append(problems, fmt.Sprintf("unsupported log level %q", c.LogLevel))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}
	return nil
}

func loadEnvFile() error {
	path := os.Getenv(envvar.EnvFile)
	if path == "" {
		path = defaultEnvFile
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		logger.Debug("Loaded env file", zap.String(zapkey.EnvFile, path))
		return nil
	case errors.Is(err, fs.ErrNotExist):
		// The env file is optional
		return nil
	default:
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
}

// Option is a function that overrides a default configuration value
type Option func(*Config)

// WithWorkers overrides the number of concurrent workers
func WithWorkers(workers int) Option {
	return func(c *Config) {
		c.Workers = workers
	}
}

// WithLogLevel overrides the log level
func WithLogLevel(lvl zapcore.Level) Option {
	return func(c *Config) {
		c.LogLevel = lvl
	}
}
