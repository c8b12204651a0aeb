package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"horse.fit/translate/internal/cli"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")
	lang := fs.String("lang", "", "Target language or locale (for example: fr, en_US)")
	source := fs.String("source", "", "Source language or locale")
	provider := fs.String("provider", "", "Translation provider name")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "translate requires one text argument")
		return 2
	}
	if strings.TrimSpace(*lang) == "" {
		fmt.Fprintln(os.Stderr, "--lang is required")
		return 2
	}
	if strings.TrimSpace(*source) == "" {
		fmt.Fprintln(os.Stderr, "--source is required")
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

	translated, err := resolved.Translate(ctx, fs.Arg(0), *lang, *source)
	if err != nil {
		logger.Error().Err(err).Msg("translate failed")
		fmt.Fprintf(os.Stderr, "Failed to translate: %v\n", err)
		return 1
	}

	if translated == "" {
		fmt.Fprintln(os.Stderr, "No translation returned")
		return 0
	}
	fmt.Println(translated)
	return 0
}
