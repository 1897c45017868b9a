package logger

import (
	"io"
	"log/slog"
)

// Config holds logger settings read from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"lipsum"`
}

// NewFromConfig builds a logger from cfg: environment defaults first, then
// the explicit level and format when set. Extra options are applied last.
func NewFromConfig(cfg Config, w io.Writer, opts ...Option) *slog.Logger {
	base := []Option{
		WithEnvironment(cfg.Env, cfg.Service),
		WithOutput(w),
	}
	if cfg.Level != "" {
		base = append(base, WithLevelName(cfg.Level))
	}
	if cfg.Format != "" {
		base = append(base, WithFormat(Format(cfg.Format)))
	}
	return New(append(base, opts...)...)
}
