package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/canopy/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envOr returns the value of the environment variable key, or def when
// it is unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Parse processes command-line arguments. Flag defaults may come from
// CANOPY_* environment variables, optionally loaded from a .env file in
// the working directory. It returns a populated Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	flagSet := flag.NewFlagSet("canopy", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Canopy - a convention-driven loader that merges a directory tree of HCL
modules into a single namespace.

Usage:
  canopy [options] [ROOT_PATH]

Arguments:
  ROOT_PATH
    Path to the root directory of the module tree.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Path to the module tree root.")
	rFlag := flagSet.String("r", "", "Path to the module tree root (shorthand).")
	argsFlag := flagSet.String("args", envOr("CANOPY_ARGS", ""), "Path to an HCL file whose attributes form the argument bundle.")
	outputFlag := flagSet.String("output", envOr("CANOPY_OUTPUT", "json"), "Namespace output format. Options: 'json' or 'none'.")
	logFormatFlag := flagSet.String("log-format", envOr("CANOPY_LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr("CANOPY_LOG_LEVEL", "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *rootFlag != "" {
		path = *rootFlag
	} else if *rFlag != "" {
		path = *rFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Root path determined.", "path", path)

	if path == "" {
		slog.Debug("No root path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RootPath:  path,
		ArgsPath:  *argsFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Output:    strings.ToLower(*outputFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
