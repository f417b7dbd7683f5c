package selector

import "github.com/mrhapile/symptom-triage/pkg/types"

// Candidates returns the diseases sharing at least one confirmed symptom,
// mapped to their full symptom sets. The symptom sets are shared with the
// catalog and must not be modified. Recomputed on every round, never cached.
func Candidates(catalog *types.Catalog, confirmed types.Set) types.Candidates {
	candidates := make(types.Candidates)
	for _, disease := range catalog.Diseases() {
		symptoms := catalog.Symptoms(disease)
		if confirmed.IntersectCount(symptoms) > 0 {
			candidates[disease] = symptoms
		}
	}
	return candidates
}
