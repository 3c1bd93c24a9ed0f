// Package metrics exposes the prometheus vectors the HTTP layer records
// against, registered once at package init via promauto the way the teacher
// service does.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts Simulate calls by outcome.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "econ_simulations_total",
			Help: "Total simulate calls by status",
		},
		[]string{"status"},
	)

	// SimulationDuration tracks end-to-end Simulate call latency.
	SimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "econ_simulation_duration_seconds",
			Help:    "Simulate call duration",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"status"},
	)

	// SolverIterations tracks per-year Gauss-Seidel iteration counts.
	SolverIterations = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "econ_solver_iterations",
			Help:    "Gauss-Seidel iterations needed per simulated year",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"status"},
	)

	// CacheHits counts idempotent result cache hits/misses.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "econ_cache_requests_total",
			Help: "Idempotent simulate-result cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordSimulation records a completed Simulate call.
func RecordSimulation(status string, durationSeconds float64) {
	SimulationsTotal.WithLabelValues(status).Inc()
	SimulationDuration.WithLabelValues(status).Observe(durationSeconds)
}

// RecordSolverYear records one year's worth of solver iterations.
func RecordSolverYear(status string, iterations int) {
	SolverIterations.WithLabelValues(status).Observe(float64(iterations))
}
