// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus counters fed from Matcher.Stats deltas.

package vf2

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isomatch",
		Subsystem: "vf2",
		Name:      "searches_total",
		Help:      "Matchers constructed, by mode.",
	}, []string{"mode"})

	mappingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isomatch",
		Subsystem: "vf2",
		Name:      "mappings_total",
		Help:      "Mappings yielded, by mode.",
	}, []string{"mode"})

	statesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isomatch",
		Subsystem: "vf2",
		Name:      "states_total",
		Help:      "Match states pushed onto search stacks, by mode.",
	}, []string{"mode"})

	feasibilityTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isomatch",
		Subsystem: "vf2",
		Name:      "feasibility_checks_total",
		Help:      "Candidate pairs tested for feasibility, by mode.",
	}, []string{"mode"})
)

// flushMetrics publishes the work done since the previous flush.
func (m *Matcher) flushMetrics() {
	d := m.stats.sub(m.flushed)
	m.flushed = m.stats

	mode := m.mode.String()
	if d.Mappings > 0 {
		mappingsTotal.WithLabelValues(mode).Add(float64(d.Mappings))
	}
	if d.States > 0 {
		statesTotal.WithLabelValues(mode).Add(float64(d.States))
	}
	if d.FeasibilityChecks > 0 {
		feasibilityTotal.WithLabelValues(mode).Add(float64(d.FeasibilityChecks))
	}
}
