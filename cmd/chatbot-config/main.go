package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/chatbot-settings/internal/application"
	"github.com/eugenenazirov/chatbot-settings/internal/config"
	"github.com/eugenenazirov/chatbot-settings/internal/logging"
)

var newLogger = logging.New

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("chatbot-config", "Chatbot settings - resolves backend configuration from the environment and a .env file")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	envFile := kingpinApp.Flag("env-file", "Path to the override file; values in the process environment win").Default(config.DefaultEnvFile).String()
	logLevel := kingpinApp.Flag("log-level", "Log level").Default("info").Enum("debug", "info", "warn", "error")

	showCmd := kingpinApp.Command("show", "Print the resolved settings")
	format := showCmd.Flag("format", "Output format").Default("yaml").Enum("yaml", "json")
	revealSecrets := showCmd.Flag("reveal-secrets", "Print API keys instead of masking them").Bool()

	checkCmd := kingpinApp.Command("check", "Fail if a required setting is missing or the LLM provider is unknown")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "chatbot-config: %v\n", err)
		return 1
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := config.LoadFile(*envFile)
	if err != nil {
		logger.Error("failed to load configuration", zap.String("env_file", *envFile), zap.Error(err))
		return 1
	}

	app := application.New(settings, logger)

	switch command {
	case showCmd.FullCommand():
		if !*revealSecrets {
			settings = settings.Redacted()
		}
		if err := writeSettings(stdout, settings, *format); err != nil {
			logger.Error("failed to print settings", zap.Error(err))
			return 1
		}
	case checkCmd.FullCommand():
		if err := app.Check(); err != nil {
			fmt.Fprintf(stderr, "configuration check failed: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "configuration OK")
	}

	return 0
}

func writeSettings(w io.Writer, settings config.Settings, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(settings); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(settings); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}
