package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	currency "github.com/malusev998/currency-converter"
)

const cbrBaseCurrency = "rub"

type (
	// CBRFetcher pulls the daily rate table published by the Central Bank
	// of Russia. The document is windows-1251 encoded XML with
	// decimal-comma values quoted per Nominal units of each currency.
	CBRFetcher struct {
		URL    string
		Client *http.Client
	}

	cbrValute struct {
		CharCode string `xml:"CharCode"`
		Nominal  int64  `xml:"Nominal"`
		Value    string `xml:"Value"`
	}

	cbrDocument struct {
		Date    string      `xml:"Date,attr"`
		Valutes []cbrValute `xml:"Valute"`
	}
)

func (f CBRFetcher) Fetch(ctx context.Context) (currency.RateTable, error) {
	url := f.URL

	if url == "" {
		url = CBRFetchURL
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

	return parseCBRDocument(res.Body)
}

func parseCBRDocument(r io.Reader) (currency.RateTable, error) {
	var document cbrDocument

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "windows-1251") {
			return charmap.Windows1251.NewDecoder().Reader(input), nil
		}

		return input, nil
	}

	// Keep the cause in the chain: a deadline expiring mid-body must stay
	// recognizable as context.DeadlineExceeded, not turn into a plain
	// parse failure.
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	table := currency.RateTable{cbrBaseCurrency: decimal.NewFromInt(1)}

	for _, valute := range document.Valutes {
		value, err := decimal.NewFromString(strings.Replace(valute.Value, ",", ".", 1))

		if err != nil || valute.Nominal <= 0 || value.IsZero() {
			return nil, fmt.Errorf("%w: bad rate for %q", ErrParse, valute.CharCode)
		}

		// CBR quotes the ruble price of Nominal units; invert so the
		// table holds units per ruble like every other source.
		table[strings.ToLower(valute.CharCode)] = decimal.NewFromInt(valute.Nominal).Div(value)
	}

	return table, nil
}
