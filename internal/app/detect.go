package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"horse.fit/translate/internal/cli"
)

func runDetect(args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")
	provider := fs.String("provider", "", "Translation provider name")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "detect requires one text argument")
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	_, logger, registry, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	resolved, err := registry.Provider(*provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	detected, err := resolved.Detect(ctx, fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("detect language failed")
		fmt.Fprintf(os.Stderr, "Failed to detect language: %v\n", err)
		return 1
	}

	if detected == "" {
		fmt.Fprintln(os.Stderr, "No language detected")
		return 0
	}
	fmt.Println(detected)
	return 0
}
