// Package telemetry exposes Prometheus counters for the calculation engine.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts metric computations by strategy and status.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rei_calculations_total",
			Help: "Total number of analysis metric computations",
		},
		[]string{"strategy", "status"},
	)

	// CalculationErrors counts computation failures by error type.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rei_calculation_errors_total",
			Help: "Number of analysis computation errors",
		},
		[]string{"strategy", "error_type"},
	)

	// CacheLookups counts metrics-cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rei_cache_lookups_total",
			Help: "Metrics cache lookups",
		},
		[]string{"result"},
	)
)
