package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	currency "github.com/malusev998/currency-converter"
	"github.com/malusev998/currency-converter/services"
	"github.com/malusev998/currency-converter/sources"
)

type ConvertHandler struct {
	Fetchers     map[currency.Source]currency.Fetcher
	Converter    currency.Converter
	FetchTimeout time.Duration
	Logger       *slog.Logger
	Metrics      *Metrics
}

// Convert serves GET /:source/:from/:to/:amount. Every request triggers a
// fresh fetch of the source's rate table; nothing is cached between
// requests.
func (h ConvertHandler) Convert(c *fiber.Ctx) error {
	source, err := currency.ConvertToSourceFromString(c.Params("source"))

	if err != nil {
		return h.fail(c, currency.EmptySource, err)
	}

	fetcher, ok := h.Fetchers[source]

	if !ok {
		return h.fail(c, source, fmt.Errorf("source %s is %w", source, currency.ErrUnknownSource))
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.FetchTimeout)
	defer cancel()

	start := time.Now()
	table, err := fetcher.Fetch(ctx)
	h.Metrics.FetchDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())

	if err != nil {
		h.Metrics.FetchErrorsTotal.WithLabelValues(string(source), fetchErrorKind(err)).Inc()
		return h.fail(c, source, err)
	}

	result, err := h.Converter.Convert(table, c.Params("from"), c.Params("to"), c.Params("amount"))

	if err != nil {
		return h.fail(c, source, err)
	}

	h.Metrics.ConversionsTotal.WithLabelValues(string(source), "success").Inc()

	return successResponseJSON(c, result)
}

func (h ConvertHandler) fail(c *fiber.Ctx, source currency.Source, err error) error {
	status := statusCodeFor(err)

	h.Metrics.ConversionsTotal.WithLabelValues(string(source), "error").Inc()
	h.Logger.Warn("conversion failed",
		"request_id", c.Locals(requestIDKey),
		"source", string(source),
		"status", status,
		"error", err,
	)

	return errorResponseJSON(c, status, err.Error())
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, currency.ErrUnknownSource),
		errors.Is(err, currency.ErrUnknownCurrency),
		errors.Is(err, services.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, sources.ErrSourceUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func fetchErrorKind(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, sources.ErrParse):
		return "parse"
	default:
		return "unavailable"
	}
}
