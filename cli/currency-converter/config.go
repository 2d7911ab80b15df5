package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	currency "github.com/malusev998/currency-converter"
	"github.com/malusev998/currency-converter/sources"
)

type (
	SourceConfig map[currency.Source]interface{}
	Config       struct {
		Host         string
		Port         int
		LogLevel     string
		FetchTimeout time.Duration
		Sources      []currency.Source
		SourceConfig SourceConfig
	}
)

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getConfig() (*Config, error) {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("fetch.timeout", "10s")
	viper.SetDefault("sources.enabled", []string{"cbr", "ecb"})

	enabled, err := currency.ConvertToSourcesFromStringSlice(viper.GetStringSlice("sources.enabled"))

	if err != nil {
		return nil, err
	}

	// One client shared by every fetcher; the per-request context carries
	// the deadline, the client timeout is only a safety net.
	client := &http.Client{Timeout: viper.GetDuration("fetch.timeout")}

	return &Config{
		Host:         viper.GetString("server.host"),
		Port:         viper.GetInt("server.port"),
		LogLevel:     viper.GetString("logging.level"),
		FetchTimeout: viper.GetDuration("fetch.timeout"),
		Sources:      enabled,
		SourceConfig: SourceConfig{
			currency.CBRSource: sources.CBRConfig{
				BaseConfig: sources.BaseConfig{
					URL:    viper.GetString("sources.cbr.url"),
					Client: client,
				},
			},
			currency.ECBSource: sources.ECBConfig{
				BaseConfig: sources.BaseConfig{
					URL:    viper.GetString("sources.ecb.url"),
					Client: client,
				},
			},
		},
	}, nil
}
