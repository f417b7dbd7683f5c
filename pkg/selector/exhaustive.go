package selector

import (
	"github.com/mrhapile/symptom-triage/pkg/scoring"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

// Exhaustive enumerates every size-n combination of the pool and keeps the
// one with the best denial-penalized combined score. Cost is C(|pool|, n);
// bounding pool size and n is the caller's job, though MaxPool offers an
// optional defensive cutoff.
type Exhaustive struct {
	engine *scoring.Engine

	// MaxPool, when positive, truncates the importance-ranked pool to its
	// top MaxPool symptoms before enumeration. Zero means no cutoff; a cap
	// below the requested batch size is ignored.
	MaxPool int
}

// NewExhaustive returns an exhaustive strategy scoring with the given engine.
func NewExhaustive(engine *scoring.Engine) *Exhaustive {
	return &Exhaustive{engine: engine}
}

func (e *Exhaustive) Name() string { return MethodExhaustive }

// Select scores every combination as the combined score of confirmed plus
// the combination, minus 0.2 per denied symptom in it. Ties are resolved by
// enumeration order over the importance-ranked pool.
func (e *Exhaustive) Select(req Request) types.Set {
	pool := rankByImportance(e.engine, req)
	if e.MaxPool > 0 && len(pool) > e.MaxPool && e.MaxPool >= req.N {
		pool = pool[:e.MaxPool]
	}

	var best types.Set
	bestScore := 0.0
	combinations(len(pool), req.N, func(indices []int) {
		combo := make(types.Set, req.N)
		deniedCount := 0
		for _, idx := range indices {
			combo.Add(pool[idx])
			if req.Denied.Has(pool[idx]) {
				deniedCount++
			}
		}
		score := e.engine.Combined(req.Confirmed.Union(combo), req.Candidates) -
			float64(deniedCount)*types.DeniedCountPenalty
		if best == nil || score > bestScore {
			best = combo
			bestScore = score
		}
	})
	if best == nil {
		return types.Set{}
	}
	return best
}

// combinations calls fn with every size-k index combination of [0, n) in
// lexicographic order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func(indices []int)) {
	if k <= 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		fn(indices)
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
