package selector

import (
	"github.com/mrhapile/symptom-triage/pkg/scoring"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

// Greedy picks one symptom at a time: at each step it scores every remaining
// pool symptom together with everything already chosen and takes the best.
// A denied symptom's score is halved at every step. Fully deterministic.
type Greedy struct {
	engine *scoring.Engine
}

// NewGreedy returns a greedy strategy scoring with the given engine.
func NewGreedy(engine *scoring.Engine) *Greedy {
	return &Greedy{engine: engine}
}

func (g *Greedy) Name() string { return MethodGreedy }

// Select iterates up to req.N times over an importance-ranked pool, each time
// adding the symptom that maximizes the combined score of confirmed plus the
// current selection plus that symptom (halved when denied). If the main loop
// ends short it backfills from the remaining pool in importance order.
func (g *Greedy) Select(req Request) types.Set {
	pool := rankByImportance(g.engine, req)
	selected := make(types.Set, req.N)

	for len(selected) < req.N && len(pool) > 0 {
		bestIdx := -1
		bestScore := 0.0
		for i, sym := range pool {
			subset := req.Confirmed.Union(selected)
			subset.Add(sym)
			score := g.engine.Combined(subset, req.Candidates)
			if req.Denied.Has(sym) {
				score *= types.DeniedScoreFactor
			}
			// Strict comparison: the earliest symptom in importance order
			// wins ties.
			if bestIdx < 0 || score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}
		selected.Add(pool[bestIdx])
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	// Backfill from the leftover pool, which is already importance-ranked.
	for _, sym := range pool {
		if len(selected) >= req.N {
			break
		}
		selected.Add(sym)
	}
	return selected
}
