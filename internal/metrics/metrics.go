// Package metrics defines Prometheus metrics for cinegraph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinegraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	QueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinegraph_queries_total",
			Help: "Total dataset queries served",
		},
	)

	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinegraph_dataset_rows",
			Help: "Rows loaded per source",
		},
		[]string{"source"},
	)

	DatasetLoadSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_dataset_load_seconds",
			Help: "Duration of the load and link phase",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		QueriesTotal, DatasetRows, DatasetLoadSeconds,
	)
}
