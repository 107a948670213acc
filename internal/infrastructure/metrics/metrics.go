package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts engine invocations by calculator kind.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juscalc_calculations_total",
			Help: "Total number of calculations performed",
		},
		[]string{"kind"},
	)

	// CalculationErrors counts failed calculations by kind.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juscalc_calculation_errors_total",
			Help: "Total number of failed calculations",
		},
		[]string{"kind"},
	)

	// CalculationDuration observes end-to-end calculation latency.
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "juscalc_calculation_duration_seconds",
			Help:    "Duration of calculations",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"kind"},
	)

	// CalculationPeriods observes how many monthly periods each
	// calculation walks.
	CalculationPeriods = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "juscalc_calculation_periods",
			Help:    "Number of monthly periods per calculation",
			Buckets: []float64{1, 6, 12, 24, 60, 120, 240, 480},
		},
		[]string{"kind"},
	)

	// IndexRateLookups counts index series resolutions by source.
	IndexRateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juscalc_index_rate_lookups_total",
			Help: "Index rate series lookups by source (cache or source)",
		},
		[]string{"index", "source"},
	)

	// IndexProviderErrors counts index provider failures.
	IndexProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juscalc_index_provider_errors_total",
			Help: "Total number of index provider failures",
		},
		[]string{"index"},
	)
)
