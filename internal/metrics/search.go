package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "landsecure",
			Name:      "searches_total",
			Help:      "Total number of land record searches",
		},
		[]string{"kind", "filters"}, // kind: search / markers
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "landsecure",
			Name:      "search_results",
			Help:      "Number of records returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"kind"},
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "landsecure",
			Name:      "record_lookups_total",
			Help:      "Record detail lookups by outcome",
		},
		[]string{"op", "result"}, // result: hit / miss
	)

	RecordsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "landsecure",
			Name:      "records_loaded",
			Help:      "Number of land records in the record store",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(RecordsLoaded)
	searchMetricsRegistered = true
}

// FilterLabel joins the names of the present filters into a bounded label
// value, e.g. "state+status". No filters yields "none".
func FilterLabel(present []string) string {
	if len(present) == 0 {
		return "none"
	}
	return strings.Join(present, "+")
}
