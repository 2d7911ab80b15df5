package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	currency "github.com/malusev998/currency-converter"
)

const DefaultFetchTimeout = 10 * time.Second

type Config struct {
	Fetchers     map[currency.Source]currency.Fetcher
	Converter    currency.Converter
	FetchTimeout time.Duration
	Logger       *slog.Logger
	Registry     *prometheus.Registry
}

// New builds the fiber application with the single conversion route and
// the metrics endpoint. The returned app is started with Listen by the
// caller.
func New(config Config) *fiber.App {
	logger := config.Logger

	if logger == nil {
		logger = slog.Default()
	}

	timeout := config.FetchTimeout

	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	registry := config.Registry

	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	handler := ConvertHandler{
		Fetchers:     config.Fetchers,
		Converter:    config.Converter,
		FetchTimeout: timeout,
		Logger:       logger,
		Metrics:      NewMetrics(registry),
	}

	app := fiber.New(fiber.Config{
		AppName:               "currency-converter",
		DisableStartupMessage: true,
	})

	app.Use(requestLogger(logger))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/:source/:from/:to/:amount", handler.Convert)

	app.Use(func(c *fiber.Ctx) error {
		return errorResponseJSON(c, fiber.StatusNotFound, "Not Found")
	})

	return app
}
