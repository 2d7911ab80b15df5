package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	currency "github.com/malusev998/currency-converter"
	"github.com/malusev998/currency-converter/sources"
)

func createFetchers(config *Config) (map[currency.Source]currency.Fetcher, error) {
	fetchers := make(map[currency.Source]currency.Fetcher, len(config.Sources))

	for _, s := range config.Sources {
		c, ok := config.SourceConfig[s]

		if !ok {
			return nil, fmt.Errorf("source %s does not exist", s)
		}

		fetchers[s] = sources.NewRateFetcher(s, c)
	}

	return fetchers, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	if debug {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
