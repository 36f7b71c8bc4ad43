// Package metrics exposes the engine's prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Metrics holds application-level instruments.
type Metrics struct {
	payoutRuns     *prometheus.CounterVec
	skippedEntries prometheus.Counter
	degradedLines  prometheus.Counter
}

// New registers the engine instruments on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		payoutRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_payout_runs_total",
			Help: "Payout preview computations, by month key.",
		}, []string{"month"}),
		skippedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_basis_entries_skipped_total",
			Help: "Basis entries dropped for referencing unknown or inactive members.",
		}),
		degradedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_degraded_lines_total",
			Help: "Payout lines forced to zero by data-quality guards.",
		}),
	}
	reg.MustRegister(m.payoutRuns, m.skippedEntries, m.degradedLines)
	return m
}

// ObserveComputation records the outcome of one month's computation.
func (m *Metrics) ObserveComputation(monthKey string, skipped, degraded int) {
	m.payoutRuns.WithLabelValues(monthKey).Inc()
	m.skippedEntries.Add(float64(skipped))
	m.degradedLines.Add(float64(degraded))
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	return reg
}

func provideRegisterer(reg *prometheus.Registry) prometheus.Registerer { return reg }

// Module wires the metrics registry and instruments.
var Module = fx.Module("observability.metrics",
	fx.Provide(
		newRegistry,
		provideRegisterer,
		New,
	),
)
