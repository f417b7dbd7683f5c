package types

// Combined-score weights. These are fixed contract values: callers and tests
// depend on the exact blend, so they are constants rather than configuration.
const (
	// WeightInformationGain scales the entropy-reduction term.
	WeightInformationGain = 0.4

	// WeightCoverage scales the mean fractional-overlap term.
	WeightCoverage = 0.4

	// WeightIndependence scales the inverse-mutual-information term.
	WeightIndependence = 0.2
)

// Denial penalties. The three strategies deliberately apply different
// formulas; do not unify them.
const (
	// DeniedScoreFactor halves a per-symptom score in the greedy strategy.
	DeniedScoreFactor = 0.5

	// DeniedCountPenalty is subtracted per denied symptom from a whole-batch
	// score in the exhaustive and genetic strategies.
	DeniedCountPenalty = 0.2
)

// Genetic strategy defaults. The values are the fixed contract
// hyperparameters; pkg/config exposes them as overridable settings whose
// defaults are exactly these constants.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 30
	DefaultMutationRate   = 0.1
	DefaultMutationFloor  = 0.01
	DefaultMutationDecay  = 0.95
	DefaultEliteSize      = 5
	DefaultTournamentSize = 3
)
