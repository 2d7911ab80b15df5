package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	currency "github.com/malusev998/currency-converter"
)

const ecbBaseCurrency = "eur"

type (
	// ECBFetcher pulls the daily eurofxref reference rates published by
	// the European Central Bank. Rates are quoted as units per euro.
	ECBFetcher struct {
		URL    string
		Client *http.Client
	}

	ecbEnvelope struct {
		Subject string    `xml:"subject"`
		Sender  string    `xml:"Sender>name"`
		Cubes   []ecbCube `xml:"Cube>Cube"`
	}

	ecbCube struct {
		Date      string        `xml:"time,attr"`
		Exchanges []ecbExchange `xml:"Cube"`
	}

	ecbExchange struct {
		Currency string `xml:"currency,attr"`
		Rate     string `xml:"rate,attr"`
	}
)

func (f ECBFetcher) Fetch(ctx context.Context) (currency.RateTable, error) {
	url := f.URL

	if url == "" {
		url = ECBFetchURL
	}

	client := f.Client

	if client == nil {
		client = http.DefaultClient
	}

	res, err := getDocument(ctx, client, url)

	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseECBDocument(res.Body)
}

func parseECBDocument(r io.Reader) (currency.RateTable, error) {
	var envelope ecbEnvelope

	if err := xml.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if len(envelope.Cubes) == 0 {
		return nil, fmt.Errorf("%w: no rate cubes in the document", ErrParse)
	}

	table := currency.RateTable{ecbBaseCurrency: decimal.NewFromInt(1)}

	for _, exchange := range envelope.Cubes[0].Exchanges {
		rate, err := decimal.NewFromString(exchange.Rate)

		if err != nil || rate.IsZero() {
			return nil, fmt.Errorf("%w: bad rate for %q", ErrParse, exchange.Currency)
		}

		table[strings.ToLower(exchange.Currency)] = rate
	}

	return table, nil
}
