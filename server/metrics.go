package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ConversionsTotal *prometheus.CounterVec
	FetchErrorsTotal *prometheus.CounterVec
	FetchDuration    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "currency_converter_conversions_total",
			Help: "Total conversion requests by source and outcome",
		}, []string{"source", "outcome"}),
		FetchErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "currency_converter_fetch_errors_total",
			Help: "Total rate table fetch failures by source and kind",
		}, []string{"source", "kind"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "currency_converter_fetch_duration_seconds",
			Help:    "Duration of outbound rate table fetches",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
	}
}
