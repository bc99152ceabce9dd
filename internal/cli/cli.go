package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/algoprovider/internal/app"
	"github.com/specialistvlad/algoprovider/internal/config"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are layered: built-in defaults, then the file named by -config,
// then every flag given explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("algoprovider", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
algoprovider - Lists the QGIS algorithm catalogue: built-in algorithms,
plotting algorithms when a plotting backend is installed, and algorithms
defined by script files.

Usage:
  algoprovider [options] [SCRIPTS_PATH]

Arguments:
  SCRIPTS_PATH
    Folder scanned recursively for .hcl, .yaml and .yml script definitions.
    Defaults to the "scripts" folder next to the executable.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Defaults()
	configFlag := flagSet.String("config", "", "Path to a TOML settings file.")
	scriptsPathFlag := flagSet.String("scripts-path", "", "Folder containing script definitions.")
	iconsPathFlag := flagSet.String("icons-path", "", "Directory the provider icon is resolved against.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", defaults.Output, "Listing format. Options: 'text' or 'json'.")
	plottingFlag := flagSet.String("plotting", defaults.Plotting, "Plotting algorithms. Options: 'auto', 'on', 'off'.")
	healthPortFlag := flagSet.Int("healthcheck-port", defaults.HealthcheckPort, "Port for the HTTP health check server. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one SCRIPTS_PATH, got %d arguments", flagSet.NArg())}
	}

	settings := defaults
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag, settings)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		settings = loaded
		slog.Debug("Settings file loaded.", "path", *configFlag)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scripts-path":
			settings.ScriptsPath = *scriptsPathFlag
		case "icons-path":
			settings.IconsPath = *iconsPathFlag
		case "log-format":
			settings.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			settings.LogLevel = strings.ToLower(*logLevelFlag)
		case "output":
			settings.Output = strings.ToLower(*outputFlag)
		case "plotting":
			settings.Plotting = strings.ToLower(*plottingFlag)
		case "healthcheck-port":
			settings.HealthcheckPort = *healthPortFlag
		}
	})
	if flagSet.NArg() == 1 {
		settings.ScriptsPath = flagSet.Arg(0)
	}
	slog.Debug("Scripts path determined.", "path", settings.ScriptsPath)

	cfg, err := app.NewConfig(settings)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
