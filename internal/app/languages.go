package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"horse.fit/translate/internal/cli"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")
	target := fs.String("target", "", "Locale to localize language names in (default: en)")
	provider := fs.String("provider", "", "Translation provider name")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
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

	list, err := resolved.Languages(ctx, *target)
	if err != nil {
		logger.Error().Err(err).Msg("list languages failed")
		fmt.Fprintf(os.Stderr, "Failed to list languages: %v\n", err)
		return 1
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CODE\tNAME\tLOCALE")
	for i, lang := range list.Languages {
		locale := ""
		if i < len(list.Locales) {
			locale = list.Locales[i]
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", lang.Code, lang.Name, locale)
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "%d languages\n", len(list.Languages))
	return 0
}
