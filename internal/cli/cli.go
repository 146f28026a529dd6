package cli

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/vk/prodcat/internal/app"
)

// EnvPrefix prefixes every environment variable read by Parse.
const EnvPrefix = "prodcat"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig is the environment layer. Its values become the flag defaults,
// so explicit flags win.
type envConfig struct {
	ConfigPath string `envconfig:"CONFIG"`
	ImportPath string `envconfig:"IMPORT"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"text"`
	NoClear    bool   `envconfig:"NO_CLEAR"`
}

// loadEnv reads an optional .env file from the working directory and then
// decodes the PRODCAT_ variables.
func loadEnv() (*envConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read .env")
	}

	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}
	return &env, nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	env, err := loadEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("prodcat", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
prodcat - An interactive product catalog for the terminal.

Usage:
  prodcat [options]

Environment:
  PRODCAT_CONFIG, PRODCAT_IMPORT, PRODCAT_LOG_LEVEL, PRODCAT_LOG_FORMAT and
  PRODCAT_NO_CLEAR set the defaults of the matching options. A .env file in
  the working directory is read first.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", env.ConfigPath, "Path to a settings .hcl file or a directory of them.")
	cFlag := flagSet.String("c", "", "Path to a settings .hcl file or a directory of them (shorthand).")
	importFlag := flagSet.String("import", env.ImportPath, "Path to a CSV file (category,name,price) to preload.")
	logFormatFlag := flagSet.String("log-format", env.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noClearFlag := flagSet.Bool("no-clear", env.NoClear, "Never clear the screen.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	path := *configFlag
	if *cFlag != "" {
		path = *cFlag
	}
	slog.Debug("Settings path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		ImportPath: *importFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		NoClear:    *noClearFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
