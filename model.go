package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("rate for the currency is not found in the table")

// RateTable maps a lowercased currency code to its rate, expressed as units
// of that currency per one unit of the source's base currency. The base
// currency itself is present with rate 1.
type RateTable map[string]decimal.Decimal

func (t RateTable) Rate(code string) (decimal.Decimal, error) {
	rate, ok := t[strings.ToLower(code)]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	return rate, nil
}

type ConversionResult struct {
	BaseCurrency   string `json:"base_currency"`
	TargetCurrency string `json:"target_currency"`
	BaseAmount     string `json:"base_amount"`
	ResultAmount   string `json:"result_amount"`
}
