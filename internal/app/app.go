package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"horse.fit/translate/internal/config"
	"horse.fit/translate/internal/logging"
	"horse.fit/translate/internal/translation"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "languages":
		return runLanguages(args[1:])
	case "detect":
		return runDetect(args[1:])
	case "translate":
		return runTranslate(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "translate CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  translate <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  languages  List languages the translation service supports")
	fmt.Fprintln(os.Stderr, "  detect     Detect the language of a text")
	fmt.Fprintln(os.Stderr, "  translate  Translate a text between languages")
	fmt.Fprintln(os.Stderr, "  serve      Start the Echo API server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"translate <command> -h\" for command-specific flags.")
}

// bootstrap loads configuration, builds the logger, and wires the
// provider registry shared by every command.
func bootstrap() (*config.Config, zerolog.Logger, *translation.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("initialize logger: %w", err)
	}

	registry, err := newProviderRegistry(cfg, logger)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	return cfg, logger, registry, nil
}

func newProviderRegistry(cfg *config.Config, logger zerolog.Logger) (*translation.Registry, error) {
	registry := translation.NewRegistry(cfg.Provider)

	google := translation.NewGoogleProvider(translation.GoogleOptions{
		APIKey:  cfg.GoogleAPIKey,
		BaseURL: cfg.GoogleBaseURL,
		Timeout: cfg.HTTPTimeout(),
	}, logger)
	if err := registry.Register(google); err != nil {
		return nil, fmt.Errorf("register google provider: %w", err)
	}

	return registry, nil
}
