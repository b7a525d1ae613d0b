// Package telemetry exports the optimizer's Prometheus metrics, generalized
// from the teacher's internal/monitoring metrics (promauto counters/gauges
// registered at package init, recorded via small helper functions).
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationsCompleted counts generations finished per optimization run.
	GenerationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizer_generations_completed_total",
			Help: "Generations completed by the genetic driver",
		},
		[]string{"run"},
	)

	// IndividualsEvaluated counts fitness evaluations performed.
	IndividualsEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizer_individuals_evaluated_total",
			Help: "Individuals evaluated across all generations",
		},
		[]string{"run"},
	)

	// BestFitness reports the best fitness seen in the most recent
	// generation.
	BestFitness = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "optimizer_best_fitness",
			Help: "Best fitness in the most recent generation",
		},
		[]string{"run"},
	)

	// PositionsClosed counts closed positions by close reason, across all
	// simulations run during evaluation.
	PositionsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizer_positions_closed_total",
			Help: "Closed positions by close reason",
		},
		[]string{"symbol", "close_reason"},
	)

	// SimulationDuration observes wall-clock time spent running one
	// candle-driven simulation.
	SimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimizer_simulation_duration_seconds",
			Help:    "Wall-clock duration of one trading simulation",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"symbol"},
	)
)

// RecordGeneration records one completed generation's best fitness and
// population size for a named run.
func RecordGeneration(run string, populationSize int, best float64) {
	GenerationsCompleted.WithLabelValues(run).Inc()
	IndividualsEvaluated.WithLabelValues(run).Add(float64(populationSize))
	BestFitness.WithLabelValues(run).Set(best)
}

// RecordPositionClosed records one closed position's outcome.
func RecordPositionClosed(symbol, closeReason string) {
	PositionsClosed.WithLabelValues(symbol, closeReason).Inc()
}
