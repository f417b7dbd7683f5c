// Package scoring implements the multi-criterion scoring functions the
// selection strategies share: information gain over the candidate-disease
// distribution, disease coverage, pairwise symptom independence, and the
// weighted combination of the three.
//
// All functions are pure: no I/O, no mutation of their inputs, and
// deterministic output for identical inputs. Degenerate inputs (empty
// candidate set, empty catalog) score zero instead of failing.
package scoring

import (
	"math"
	"sort"

	"github.com/mrhapile/symptom-triage/pkg/types"
)

// Engine scores symptom subsets against candidate diseases. Independence is
// computed over the whole catalog, not just the candidates, so the Engine
// keeps a reference to it.
type Engine struct {
	catalog *types.Catalog
}

// NewEngine returns an Engine bound to the given catalog.
func NewEngine(catalog *types.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// InformationGain measures the entropy reduction obtained by partitioning the
// candidate diseases on the membership vector of subset: baseline entropy
// log2(|candidates|) minus the entropy of the partition's group-size
// distribution. Zero when there are no candidates.
func (e *Engine) InformationGain(subset types.Set, candidates types.Candidates) float64 {
	total := len(candidates)
	if total == 0 {
		return 0
	}
	baseline := math.Log2(float64(total))

	// One boolean per subset symptom, per disease; diseases with the same
	// vector fall into the same group. Only group sizes matter.
	symptoms := subset.Sorted()
	groups := make(map[string]int)
	for _, disease := range sortedDiseases(candidates) {
		diseaseSymptoms := candidates[disease]
		key := make([]byte, len(symptoms))
		for i, sym := range symptoms {
			if diseaseSymptoms.Has(sym) {
				key[i] = '1'
			} else {
				key[i] = '0'
			}
		}
		groups[string(key)]++
	}

	conditional := 0.0
	for _, key := range sortedKeys(groups) {
		p := float64(groups[key]) / float64(total)
		if p > 0 {
			conditional -= p * math.Log2(p)
		}
	}
	return baseline - conditional
}

// Coverage is the mean, over candidate diseases, of the fraction of each
// disease's symptoms contained in subset. Zero when there are no candidates.
func (e *Engine) Coverage(subset types.Set, candidates types.Candidates) float64 {
	if len(candidates) == 0 {
		return 0
	}
	total := 0.0
	for _, disease := range sortedDiseases(candidates) {
		diseaseSymptoms := candidates[disease]
		total += float64(subset.IntersectCount(diseaseSymptoms)) / float64(len(diseaseSymptoms))
	}
	return total / float64(len(candidates))
}

// Independence scores how uncorrelated the symptoms in subset are across the
// entire catalog: 1/(1+Σ pairwise pointwise mutual information). A subset of
// at most one symptom is maximally independent.
func (e *Engine) Independence(subset types.Set) float64 {
	if len(subset) <= 1 {
		return 1.0
	}
	symptoms := subset.Sorted()
	mutualInfoTotal := 0.0
	for i := 0; i < len(symptoms); i++ {
		for j := i + 1; j < len(symptoms); j++ {
			mutualInfoTotal += e.mutualInformation(symptoms[i], symptoms[j])
		}
	}
	return 1.0 / (1.0 + mutualInfoTotal)
}

// mutualInformation is the pointwise mutual information of two symptoms over
// the whole catalog: p(a,b)·log2(p(a,b)/(p(a)·p(b))), or zero when the pair
// never co-occurs or the catalog is empty.
func (e *Engine) mutualInformation(a, b string) float64 {
	total := e.catalog.Len()
	if total == 0 {
		return 0
	}
	countBoth, countA, countB := 0, 0, 0
	for _, disease := range e.catalog.Diseases() {
		symptoms := e.catalog.Symptoms(disease)
		hasA := symptoms.Has(a)
		hasB := symptoms.Has(b)
		if hasA && hasB {
			countBoth++
		}
		if hasA {
			countA++
		}
		if hasB {
			countB++
		}
	}
	if countBoth == 0 {
		return 0
	}
	pBoth := float64(countBoth) / float64(total)
	pA := float64(countA) / float64(total)
	pB := float64(countB) / float64(total)
	return pBoth * math.Log2(pBoth/(pA*pB))
}

// Combined blends the three criteria with the fixed contract weights.
// Denial penalties are not applied here: each strategy layers its own
// penalty rule on top of this score.
func (e *Engine) Combined(subset types.Set, candidates types.Candidates) float64 {
	return types.WeightInformationGain*e.InformationGain(subset, candidates) +
		types.WeightCoverage*e.Coverage(subset, candidates) +
		types.WeightIndependence*e.Independence(subset)
}

func sortedDiseases(candidates types.Candidates) []string {
	names := make([]string, 0, len(candidates))
	for disease := range candidates {
		names = append(names, disease)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(groups map[string]int) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
