// Package engine exposes the diagnostic orchestrator: it filters candidate
// diseases from the confirmed symptoms, dispatches batch selection to the
// configured strategy, and reports per-disease match rates.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mrhapile/symptom-triage/pkg/config"
	"github.com/mrhapile/symptom-triage/pkg/metrics"
	"github.com/mrhapile/symptom-triage/pkg/scoring"
	"github.com/mrhapile/symptom-triage/pkg/selector"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

var (
	// ErrUnknownMethod is returned when the method name matches no strategy.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrInvalidN is returned when the requested batch size is not positive.
	ErrInvalidN = errors.New("symptom count must be positive")
)

// System ties the catalog, the scoring engine, and the three selection
// strategies together. It holds no per-round state: every call recomputes
// candidates and the available pool from its inputs.
type System struct {
	catalog       *types.Catalog
	strategies    map[string]selector.Strategy
	defaultMethod string
	metrics       *metrics.Metrics
	log           *slog.Logger
}

type options struct {
	logger            *slog.Logger
	metrics           *metrics.Metrics
	genetic           selector.GeneticParams
	seed              int64
	seeded            bool
	exhaustiveMaxPool int
	defaultMethod     string
}

// Option configures a System.
type Option func(*options)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithMetrics attaches Prometheus collectors updated on every selection.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithGeneticParams overrides the genetic strategy's hyperparameters.
func WithGeneticParams(p selector.GeneticParams) Option {
	return func(o *options) { o.genetic = p }
}

// WithSeed seeds the genetic strategy's random generator. A fixed seed makes
// genetic proposals reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithExhaustiveMaxPool caps the pool the exhaustive strategy enumerates
// over, keeping its top maxPool symptoms by importance. Zero disables the
// cap.
func WithExhaustiveMaxPool(maxPool int) Option {
	return func(o *options) { o.exhaustiveMaxPool = maxPool }
}

// WithDefaultMethod sets the strategy used when NextSymptoms is called with
// an empty method name. Defaults to "greedy".
func WithDefaultMethod(method string) Option {
	return func(o *options) { o.defaultMethod = method }
}

// New builds a System over the catalog with the three standard strategies.
func New(catalog *types.Catalog, opts ...Option) *System {
	o := options{
		genetic:       selector.DefaultGeneticParams(),
		defaultMethod: selector.MethodGreedy,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	scorer := scoring.NewEngine(catalog)
	exhaustive := selector.NewExhaustive(scorer)
	exhaustive.MaxPool = o.exhaustiveMaxPool
	rng := rand.New(rand.NewSource(o.seed))

	s := &System{
		catalog:       catalog,
		strategies:    make(map[string]selector.Strategy, 3),
		defaultMethod: o.defaultMethod,
		metrics:       o.metrics,
		log:           o.logger.With("component", "engine"),
	}
	for _, strat := range []selector.Strategy{
		selector.NewGreedy(scorer),
		exhaustive,
		selector.NewGenetic(scorer, o.genetic, rng),
	} {
		s.strategies[strat.Name()] = strat
	}
	return s
}

// NewFromConfig builds a System from a loaded configuration. Extra options
// are applied after the config-derived ones and win on conflict.
func NewFromConfig(catalog *types.Catalog, cfg *config.Config, opts ...Option) *System {
	base := []Option{
		WithGeneticParams(cfg.Genetic.Params()),
		WithExhaustiveMaxPool(cfg.Selector.ExhaustiveMaxPool),
		WithDefaultMethod(cfg.Selector.DefaultMethod),
	}
	if cfg.Genetic.Seed != 0 {
		base = append(base, WithSeed(cfg.Genetic.Seed))
	}
	return New(catalog, append(base, opts...)...)
}

// NextSymptoms proposes up to n symptoms to ask about next, chosen by the
// named strategy ("greedy", "exhaustive", or "genetic"). Denied symptoms
// stay eligible but are penalized by each strategy's own rule. When fewer
// than n symptoms remain unconfirmed, the whole remainder is returned
// unscored. The confirmed and denied sets are only read, never modified.
func (s *System) NextSymptoms(confirmed types.Set, n int, method string, denied types.Set) (types.Set, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidN, n)
	}
	if confirmed == nil {
		confirmed = types.Set{}
	}
	if denied == nil {
		denied = types.Set{}
	}
	if method == "" {
		method = s.defaultMethod
	}

	start := time.Now()
	candidates := selector.Candidates(s.catalog, confirmed)
	poolSet := s.catalog.AllSymptoms().Diff(confirmed)

	// The short-proposal rule applies before dispatch: when the pool cannot
	// fill the batch, the whole remainder is returned for any method.
	if len(poolSet) < n {
		s.log.Debug("short proposal: pool smaller than requested batch",
			"method", method, "pool", len(poolSet), "n", n)
		s.observe(method, len(candidates), len(poolSet), true, time.Since(start))
		return poolSet, nil
	}

	strategy, ok := s.strategies[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	proposal := strategy.Select(selector.Request{
		Confirmed:  confirmed,
		Denied:     denied,
		Pool:       poolSet.Sorted(),
		Candidates: candidates,
		N:          n,
	})

	elapsed := time.Since(start)
	s.log.Debug("selected next symptoms",
		"method", method,
		"pool", len(poolSet),
		"candidates", len(candidates),
		"proposal", len(proposal),
		"duration", elapsed)
	s.observe(method, len(candidates), len(proposal), false, elapsed)
	return proposal, nil
}

// MatchScores returns, for every disease, the fraction of its symptoms
// already confirmed. Independent of the selection strategies.
func (s *System) MatchScores(confirmed types.Set) map[string]float64 {
	scores := make(map[string]float64, s.catalog.Len())
	for _, disease := range s.catalog.Diseases() {
		symptoms := s.catalog.Symptoms(disease)
		if len(symptoms) == 0 {
			scores[disease] = 0.0
			continue
		}
		scores[disease] = float64(confirmed.IntersectCount(symptoms)) / float64(len(symptoms))
	}
	return scores
}

func (s *System) observe(method string, candidates, proposal int, short bool, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.SelectionsTotal.WithLabelValues(method).Inc()
	s.metrics.SelectionDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	s.metrics.CandidateDiseases.Observe(float64(candidates))
	s.metrics.ProposalSize.Observe(float64(proposal))
	if short {
		s.metrics.ShortProposalsTotal.Inc()
	}
}
