// Package metrics defines the Prometheus collectors the engine updates on
// every selection round and exposes a scrape handler helper. The library
// never starts a server; serving the handler is the caller's choice.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the selection engine.
type Metrics struct {
	SelectionsTotal     *prometheus.CounterVec
	SelectionDuration   *prometheus.HistogramVec
	CandidateDiseases   prometheus.Histogram
	ProposalSize        prometheus.Histogram
	ShortProposalsTotal prometheus.Counter
}

// New creates the collectors and registers them on reg. A nil reg registers
// on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SelectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "symptom_selections_total",
				Help: "Total symptom selection rounds by method.",
			},
			[]string{"method"},
		),
		SelectionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "symptom_selection_duration_seconds",
				Help:    "Selection round latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method"},
		),
		CandidateDiseases: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "candidate_diseases",
				Help:    "Number of candidate diseases per selection round.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		ProposalSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "proposal_size",
				Help:    "Number of symptoms proposed per round.",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		),
		ShortProposalsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "short_proposals_total",
				Help: "Rounds where the remaining pool was smaller than the requested batch.",
			},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.SelectionsTotal,
		m.SelectionDuration,
		m.CandidateDiseases,
		m.ProposalSize,
		m.ShortProposalsTotal,
	)
	return m
}

// Handler returns the Prometheus scrape HTTP handler for the default
// registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
