package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RootPath string // root directory of the module tree
	ArgsPath string // optional HCL file whose attributes form the argument bundle

	LogFormat string
	LogLevel  string
	Output    string // namespace output format: "json" or "none"
}

// NewConfig validates the given configuration and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootPath == "" {
		return nil, errors.New("RootPath is a required configuration field and cannot be empty")
	}

	if cfg.Output == "" {
		cfg.Output = "json"
	}
	switch cfg.Output {
	case "json", "none":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'json' or 'none'", cfg.Output)
	}

	return &cfg, nil
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. outW receives the
// rendered namespace; logW receives log output, so machine-readable
// results and diagnostics never interleave.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
