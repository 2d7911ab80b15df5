package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	currency "github.com/malusev998/currency-converter"
)

var ErrInvalidAmount = errors.New("amount of money is not correct")

// resultPrecision is the number of fractional digits in rendered amounts,
// matching the two-decimal display convention of the rate providers.
const resultPrecision int32 = 2

type ConversionService struct{}

// Convert computes amount × rate[to] / rate[from]. Both rates come from
// the same table and are relative to the same base currency, so the base
// cancels out of the cross rate.
func (c ConversionService) Convert(table currency.RateTable, from, to, amount string) (currency.ConversionResult, error) {
	value, err := decimal.NewFromString(amount)

	if err != nil || value.IsNegative() {
		return currency.ConversionResult{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	fromRate, err := table.Rate(from)

	if err != nil {
		return currency.ConversionResult{}, err
	}

	toRate, err := table.Rate(to)

	if err != nil {
		return currency.ConversionResult{}, err
	}

	result := value.Mul(toRate).Div(fromRate)

	return currency.ConversionResult{
		BaseCurrency:   from,
		TargetCurrency: to,
		BaseAmount:     amount,
		ResultAmount:   result.StringFixed(resultPrecision),
	}, nil
}
