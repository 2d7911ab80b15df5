package currency

type (
	Converter interface {
		Convert(table RateTable, from, to, amount string) (ConversionResult, error)
	}
)
