// Package selector implements the candidate-disease filter and the three
// interchangeable batch-selection strategies (greedy, exhaustive, genetic)
// that propose the next symptoms to ask about.
package selector

import (
	"sort"

	"github.com/mrhapile/symptom-triage/pkg/scoring"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

// Strategy method names accepted by the engine.
const (
	MethodGreedy     = "greedy"
	MethodExhaustive = "exhaustive"
	MethodGenetic    = "genetic"
)

// Request carries one selection round's inputs. The strategy reads it and
// returns a proposal; it never mutates the confirmed or denied sets.
type Request struct {
	// Confirmed holds symptoms the patient has confirmed so far.
	Confirmed types.Set

	// Denied holds symptoms the patient has denied. Denied symptoms stay
	// eligible for proposal; each strategy penalizes them its own way.
	Denied types.Set

	// Pool is the lexicographically sorted list of symptoms still available
	// for proposal (all catalog symptoms minus confirmed). The engine
	// guarantees len(Pool) >= N.
	Pool []string

	// Candidates maps each disease sharing a confirmed symptom to its full
	// symptom set.
	Candidates types.Candidates

	// N is the number of symptoms to propose.
	N int
}

// Strategy selects a batch of symptoms to propose next.
type Strategy interface {
	// Name returns the method name the strategy is dispatched under.
	Name() string

	// Select returns a proposal of up to req.N symptoms from req.Pool.
	Select(req Request) types.Set
}

// rankByImportance returns the pool sorted by descending single-symptom
// importance: the combined score of confirmed plus that one symptom, halved
// when the symptom was denied. Ties keep the pool's lexicographic order, so
// the result is deterministic.
func rankByImportance(engine *scoring.Engine, req Request) []string {
	scores := make(map[string]float64, len(req.Pool))
	for _, sym := range req.Pool {
		score := engine.Combined(req.Confirmed.Union(types.NewSet(sym)), req.Candidates)
		if req.Denied.Has(sym) {
			score *= types.DeniedScoreFactor
		}
		scores[sym] = score
	}
	ranked := make([]string, len(req.Pool))
	copy(ranked, req.Pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}
