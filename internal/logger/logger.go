// Package logger builds the service zerolog.Logger from configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Config struct {
	Level       string         `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format      string         `mapstructure:"format" validate:"omitempty,oneof=json console"`
	Output      string         `mapstructure:"output" validate:"omitempty,oneof=stdout stderr"`
	ServiceName string         `mapstructure:"service_name"`
	Env         string         `mapstructure:"env" validate:"omitempty,oneof=dev staging prod"`
	WithCaller  bool           `mapstructure:"with_caller"`
	Fields      map[string]any `mapstructure:"fields"`
}

// New returns a logger writing to the configured output. Console format is
// meant for humans in development; every other environment logs JSON.
func New(cfg Config) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var out io.Writer = os.Stdout
	if cfg.Output == "stderr" {
		out = os.Stderr
	}

	return build(cfg, out, level), nil
}

func build(cfg Config, out io.Writer, level zerolog.Level) zerolog.Logger {
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env)

	if cfg.WithCaller {
		ctx = ctx.Caller()
	}
	if len(cfg.Fields) > 0 {
		ctx = ctx.Fields(cfg.Fields)
	}

	return ctx.Logger()
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}

	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	if c.Output == "" {
		c.Output = "stdout"
	}

	if c.ServiceName == "" {
		c.ServiceName = "listpager"
	}
}
