package engine

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mrhapile/symptom-triage/pkg/config"
	"github.com/mrhapile/symptom-triage/pkg/metrics"
	"github.com/mrhapile/symptom-triage/pkg/selector"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

var allMethods = []string{
	selector.MethodGreedy,
	selector.MethodExhaustive,
	selector.MethodGenetic,
}

func testCatalog(t *testing.T) *types.Catalog {
	t.Helper()
	catalog, err := types.NewCatalog(map[string]types.Set{
		"A": types.NewSet("x", "y"),
		"B": types.NewSet("y", "z"),
		"C": types.NewSet("x", "z", "w"),
	})
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}
	return catalog
}

func TestNextSymptoms_ExcludesConfirmed(t *testing.T) {
	system := New(testCatalog(t), WithSeed(1))
	confirmed := types.NewSet("x", "y")

	for _, method := range allMethods {
		proposal, err := system.NextSymptoms(confirmed, 2, method, types.NewSet())
		if err != nil {
			t.Fatalf("%s: NextSymptoms returned error: %v", method, err)
		}
		for sym := range proposal {
			if confirmed.Has(sym) {
				t.Errorf("%s: proposal contains confirmed symptom %q", method, sym)
			}
		}
	}
}

func TestNextSymptoms_ShortPool(t *testing.T) {
	// Confirmed {x,y} leaves only {z,w}; asking for 5 must return exactly
	// those two, whatever the method.
	system := New(testCatalog(t), WithSeed(1))
	confirmed := types.NewSet("x", "y")
	remaining := types.NewSet("z", "w")

	for _, method := range allMethods {
		proposal, err := system.NextSymptoms(confirmed, 5, method, types.NewSet())
		if err != nil {
			t.Fatalf("%s: NextSymptoms returned error: %v", method, err)
		}
		if !proposal.Equal(remaining) {
			t.Errorf("%s: expected %v, got %v", method, remaining.Sorted(), proposal.Sorted())
		}
	}
}

func TestNextSymptoms_LiteralExhaustiveScenario(t *testing.T) {
	// Catalog A:{x,y}, B:{y,z}, C:{x,z,w}, confirmed {x}: candidates are A
	// and C, and the hand-computed winner among {y,z,w} is y.
	system := New(testCatalog(t))

	proposal, err := system.NextSymptoms(types.NewSet("x"), 1, selector.MethodExhaustive, types.NewSet())
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	if !proposal.Equal(types.NewSet("y")) {
		t.Errorf("Expected proposal {y}, got %v", proposal.Sorted())
	}
}

func TestNextSymptoms_UnknownMethod(t *testing.T) {
	system := New(testCatalog(t))

	_, err := system.NextSymptoms(types.NewSet("x"), 2, "annealing", types.NewSet())
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("Expected ErrUnknownMethod, got %v", err)
	}
}

func TestNextSymptoms_InvalidN(t *testing.T) {
	system := New(testCatalog(t))

	for _, n := range []int{0, -3} {
		_, err := system.NextSymptoms(types.NewSet("x"), n, selector.MethodGreedy, types.NewSet())
		if !errors.Is(err, ErrInvalidN) {
			t.Errorf("n=%d: expected ErrInvalidN, got %v", n, err)
		}
	}
}

func TestNextSymptoms_DefaultMethod(t *testing.T) {
	system := New(testCatalog(t))

	proposal, err := system.NextSymptoms(types.NewSet("x"), 1, "", types.NewSet())
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	if !proposal.Equal(types.NewSet("y")) {
		t.Errorf("Expected greedy default to pick {y}, got %v", proposal.Sorted())
	}
}

func TestNextSymptoms_DoesNotMutateInputs(t *testing.T) {
	system := New(testCatalog(t), WithSeed(5))
	confirmed := types.NewSet("x")
	denied := types.NewSet("y")

	for _, method := range allMethods {
		if _, err := system.NextSymptoms(confirmed, 2, method, denied); err != nil {
			t.Fatalf("%s: NextSymptoms returned error: %v", method, err)
		}
	}

	if !confirmed.Equal(types.NewSet("x")) {
		t.Errorf("Confirmed set was mutated: %v", confirmed.Sorted())
	}
	if !denied.Equal(types.NewSet("y")) {
		t.Errorf("Denied set was mutated: %v", denied.Sorted())
	}
}

func TestNextSymptoms_GeneticReproducibleAcrossSystems(t *testing.T) {
	catalog := testCatalog(t)
	confirmed := types.NewSet("x")
	denied := types.NewSet("w")

	first, err := New(catalog, WithSeed(1234)).NextSymptoms(confirmed, 2, selector.MethodGenetic, denied)
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	second, err := New(catalog, WithSeed(1234)).NextSymptoms(confirmed, 2, selector.MethodGenetic, denied)
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("Same seed produced different proposals: %v vs %v",
			first.Sorted(), second.Sorted())
	}
}

func TestMatchScores_EmptyConfirmed(t *testing.T) {
	system := New(testCatalog(t))

	for disease, score := range system.MatchScores(types.NewSet()) {
		if score != 0.0 {
			t.Errorf("Expected 0.0 for %s with no confirmed symptoms, got %g", disease, score)
		}
	}
}

func TestMatchScores_Ratios(t *testing.T) {
	system := New(testCatalog(t))

	scores := system.MatchScores(types.NewSet("x", "y"))
	if scores["A"] != 1.0 {
		t.Errorf("Expected A=1.0, got %g", scores["A"])
	}
	if scores["B"] != 0.5 {
		t.Errorf("Expected B=0.5, got %g", scores["B"])
	}
	if scores["C"] != 1.0/3.0 {
		t.Errorf("Expected C=1/3, got %g", scores["C"])
	}
}

func TestMatchScores_MonotoneInConfirmed(t *testing.T) {
	system := New(testCatalog(t))

	smaller := system.MatchScores(types.NewSet("x"))
	larger := system.MatchScores(types.NewSet("x", "y", "z"))
	for disease, score := range smaller {
		if larger[disease] < score {
			t.Errorf("%s: match rate decreased from %g to %g when confirmed grew",
				disease, score, larger[disease])
		}
	}
}

func TestNextSymptoms_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	system := New(testCatalog(t), WithMetrics(m), WithSeed(1))

	if _, err := system.NextSymptoms(types.NewSet("x"), 2, selector.MethodGreedy, types.NewSet()); err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	if _, err := system.NextSymptoms(types.NewSet("x", "y"), 5, selector.MethodGreedy, types.NewSet()); err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}

	if got := testutil.ToFloat64(m.SelectionsTotal.WithLabelValues(selector.MethodGreedy)); got != 2 {
		t.Errorf("Expected 2 greedy selections recorded, got %g", got)
	}
	if got := testutil.ToFloat64(m.ShortProposalsTotal); got != 1 {
		t.Errorf("Expected 1 short proposal recorded, got %g", got)
	}
}

func TestNewFromConfig_AppliesGeneticSettings(t *testing.T) {
	catalog := testCatalog(t)
	cfg := config.Default()
	cfg.Genetic.Seed = 77
	cfg.Genetic.Generations = 5

	first, err := NewFromConfig(catalog, cfg).NextSymptoms(types.NewSet("x"), 2, selector.MethodGenetic, types.NewSet())
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	second, err := NewFromConfig(catalog, cfg).NextSymptoms(types.NewSet("x"), 2, selector.MethodGenetic, types.NewSet())
	if err != nil {
		t.Fatalf("NextSymptoms returned error: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("Config seed did not reproduce proposals: %v vs %v",
			first.Sorted(), second.Sorted())
	}
	if len(first) != 2 {
		t.Errorf("Expected 2 symptoms, got %d", len(first))
	}
}
