package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	CBRFetchURL = "https://www.cbr.ru/scripts/XML_daily.asp"
	ECBFetchURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
)

var (
	ErrSourceUnavailable = errors.New("rate source is unavailable")
	ErrParse             = errors.New("rate source document cannot be parsed")
)

func getDocument(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/xml, text/xml")

	res, err := client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if res.StatusCode != http.StatusOK {
		_ = res.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, res.StatusCode)
	}

	return res, nil
}
