package currency

import "context"

type (
	Fetcher interface {
		Fetch(ctx context.Context) (RateTable, error)
	}
)
