package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/currency-converter/server"
	"github.com/malusev998/currency-converter/services"
)

var (
	rootCmd = &cobra.Command{
		Use:     "currency-converter",
		Short:   "Currency conversion HTTP service",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	cobra.OnInitialize()

	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("CURRENCY_CONVERTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(serve())

	return rootCmd.Execute()
}

func serve() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error while reading in the config file: %w", err)
			}

			config, err := getConfig()

			if err != nil {
				return err
			}

			logger := newLogger(config.LogLevel)
			slog.SetDefault(logger)

			fetchers, err := createFetchers(config)

			if err != nil {
				return err
			}

			app := server.New(server.Config{
				Fetchers:     fetchers,
				Converter:    services.ConversionService{},
				FetchTimeout: config.FetchTimeout,
				Logger:       logger,
			})

			logger.Info("starting server",
				"address", config.Address(),
				"sources", config.Sources,
				"fetch_timeout", config.FetchTimeout,
			)

			return app.Listen(config.Address())
		},
	}
}
