package sources

import (
	"net/http"

	currency "github.com/malusev998/currency-converter"
)

type (
	BaseConfig struct {
		URL    string
		Client *http.Client
	}
	CBRConfig struct {
		BaseConfig
	}
	ECBConfig struct {
		BaseConfig
	}
)

func NewRateFetcher(source currency.Source, config interface{}) currency.Fetcher {
	switch source {
	case currency.CBRSource:
		c := config.(CBRConfig)

		return CBRFetcher{
			URL:    c.URL,
			Client: c.Client,
		}
	case currency.ECBSource:
		c := config.(ECBConfig)

		return ECBFetcher{
			URL:    c.URL,
			Client: c.Client,
		}
	}

	return nil
}
