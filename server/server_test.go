package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	currency "github.com/malusev998/currency-converter"
	"github.com/malusev998/currency-converter/server"
	"github.com/malusev998/currency-converter/services"
	"github.com/malusev998/currency-converter/sources"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context) (currency.RateTable, error) {
	args := m.Called(ctx)

	table, _ := args.Get(0).(currency.RateTable)

	return table, args.Error(1)
}

type envelope struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	Result  currency.ConversionResult `json:"result"`
}

func rubBasedTable() currency.RateTable {
	return currency.RateTable{
		"rub": decimal.NewFromInt(1),
		"usd": decimal.NewFromInt(1).Div(decimal.RequireFromString("63.45")),
	}
}

func newTestApp(fetcher currency.Fetcher) *fiber.App {
	return server.New(server.Config{
		Fetchers:  map[currency.Source]currency.Fetcher{currency.CBRSource: fetcher},
		Converter: services.ConversionService{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, envelope) {
	t.Helper()

	res, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var e envelope
	require.NoError(t, json.Unmarshal(body, &e))

	return res.StatusCode, e
}

func TestServer_ConvertSuccess(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(rubBasedTable(), nil)

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/cbr/usd/rub/1")

	assert.Equal(http.StatusOK, status)
	assert.Equal("success", response.Status)
	assert.Equal("usd", response.Result.BaseCurrency)
	assert.Equal("rub", response.Result.TargetCurrency)
	assert.Equal("1", response.Result.BaseAmount)
	assert.Equal("63.45", response.Result.ResultAmount)
	fetcher.AssertExpectations(t)
}

func TestServer_UnknownSource(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/nbs/usd/rub/1")

	assert.Equal(http.StatusBadRequest, status)
	assert.Equal("error", response.Status)
	assert.NotEmpty(response.Message)
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything)
}

func TestServer_InvalidAmount(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(rubBasedTable(), nil)

	app := newTestApp(fetcher)

	for _, amount := range []string{"abc", "-5"} {
		status, response := doRequest(t, app, http.MethodGet, "/cbr/usd/rub/"+amount)

		assert.Equal(http.StatusBadRequest, status)
		assert.Equal("error", response.Status)
	}
}

func TestServer_UnknownCurrency(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(rubBasedTable(), nil)

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/cbr/usd/xxx/1")

	assert.Equal(http.StatusBadRequest, status)
	assert.Equal("error", response.Status)
	assert.Contains(response.Message, "xxx")
}

func TestServer_SourceUnavailable(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(nil, fmt.Errorf("%w: connection refused", sources.ErrSourceUnavailable))

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/cbr/usd/rub/1")

	assert.Equal(http.StatusBadGateway, status)
	assert.Equal("error", response.Status)
}

func TestServer_ParseError(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(nil, fmt.Errorf("%w: unexpected EOF", sources.ErrParse))

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/cbr/usd/rub/1")

	assert.Equal(http.StatusInternalServerError, status)
	assert.Equal("error", response.Status)
}

func TestServer_FetchDeadlineMidBodyMapsToGatewayTimeout(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(nil, fmt.Errorf("%w: %w", sources.ErrParse, context.DeadlineExceeded))

	status, response := doRequest(t, newTestApp(fetcher), http.MethodGet, "/cbr/usd/rub/1")

	assert.Equal(http.StatusGatewayTimeout, status)
	assert.Equal("error", response.Status)
}

func TestServer_FetchTimeoutKeepsServing(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	timeoutErr := fmt.Errorf("%w: %w", sources.ErrSourceUnavailable, context.DeadlineExceeded)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(nil, timeoutErr).Once()
	fetcher.On("Fetch", mock.Anything).Return(rubBasedTable(), nil).Once()

	app := newTestApp(fetcher)

	status, response := doRequest(t, app, http.MethodGet, "/cbr/usd/rub/1")
	assert.Equal(http.StatusGatewayTimeout, status)
	assert.Equal("error", response.Status)

	status, response = doRequest(t, app, http.MethodGet, "/cbr/usd/rub/1")
	assert.Equal(http.StatusOK, status)
	assert.Equal("success", response.Status)
	fetcher.AssertExpectations(t)
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	app := newTestApp(&mockFetcher{})

	status, response := doRequest(t, app, http.MethodGet, "/cbr/usd/rub")
	assert.Equal(http.StatusNotFound, status)
	assert.Equal("error", response.Status)

	status, response = doRequest(t, app, http.MethodPost, "/cbr/usd/rub/1")
	assert.Equal(http.StatusNotFound, status)
	assert.Equal("error", response.Status)
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	fetcher := &mockFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(rubBasedTable(), nil)

	app := newTestApp(fetcher)

	_, _ = doRequest(t, app, http.MethodGet, "/cbr/usd/rub/1")

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NoError(err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.StatusCode)
	assert.True(strings.Contains(string(body), "currency_converter_conversions_total"))
	assert.True(strings.Contains(string(body), "currency_converter_fetch_duration_seconds"))
}
