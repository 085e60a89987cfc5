package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for loading and
// querying.
type Metrics struct {
	NEOsLoaded       prometheus.Counter
	ApproachesLoaded prometheus.Counter
	RecordsSkipped   *prometheus.CounterVec // labels: dataset={neos,approaches}
	PlaceholderNEOs  prometheus.Counter

	QueriesServed   prometheus.Counter
	QueryErrors     prometheus.Counter
	QueryDuration   prometheus.Histogram
	ResultsReturned prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		NEOsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "neos_loaded_total",
			Help:      "NEO records successfully loaded from the CSV dataset.",
		}),
		ApproachesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "approaches_loaded_total",
			Help:      "Close-approach records successfully loaded from the JSON dataset.",
		}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "records_skipped_total",
			Help:      "Records skipped during load because validation failed.",
		}, []string{"dataset"}),
		PlaceholderNEOs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "placeholder_neos_total",
			Help:      "Placeholder NEOs synthesized for approaches with no matching NEO.",
		}),
		QueriesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "queries_served_total",
			Help:      "Filter queries answered over HTTP.",
		}),
		QueryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neoquery",
			Name:      "query_errors_total",
			Help:      "HTTP queries rejected for malformed filter parameters.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neoquery",
			Name:      "query_duration_seconds",
			Help:      "Duration of a complete filter-and-serialize query cycle.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ResultsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neoquery",
			Name:      "results_returned",
			Help:      "Number of approaches returned per query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	prometheus.MustRegister(
		m.NEOsLoaded,
		m.ApproachesLoaded,
		m.RecordsSkipped,
		m.PlaceholderNEOs,
		m.QueriesServed,
		m.QueryErrors,
		m.QueryDuration,
		m.ResultsReturned,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		NEOsLoaded:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neoquery", Name: "neos_loaded_total"}),
		ApproachesLoaded: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neoquery", Name: "approaches_loaded_total"}),
		RecordsSkipped:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "neoquery", Name: "records_skipped_total"}, []string{"dataset"}),
		PlaceholderNEOs:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neoquery", Name: "placeholder_neos_total"}),
		QueriesServed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neoquery", Name: "queries_served_total"}),
		QueryErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neoquery", Name: "query_errors_total"}),
		QueryDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neoquery", Name: "query_duration_seconds"}),
		ResultsReturned:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neoquery", Name: "results_returned"}),
	}
}
