package selector

import (
	"testing"

	"github.com/mrhapile/symptom-triage/pkg/types"
)

// testCatalog is the reference catalog shared by the selector tests:
// A:{x,y}, B:{y,z}, C:{x,z,w}.
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

func TestCandidates_SharedConfirmedSymptom(t *testing.T) {
	catalog := testCatalog(t)

	candidates := Candidates(catalog, types.NewSet("x"))
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if _, ok := candidates["A"]; !ok {
		t.Error("Expected A among candidates")
	}
	if _, ok := candidates["C"]; !ok {
		t.Error("Expected C among candidates")
	}
	if !candidates["C"].Equal(types.NewSet("x", "z", "w")) {
		t.Errorf("Expected C's full symptom set, got %v", candidates["C"].Sorted())
	}
}

func TestCandidates_NoConfirmedSymptoms(t *testing.T) {
	catalog := testCatalog(t)

	if got := Candidates(catalog, types.NewSet()); len(got) != 0 {
		t.Errorf("Expected no candidates for empty confirmed set, got %d", len(got))
	}
}

func TestCandidates_UnknownSymptom(t *testing.T) {
	catalog := testCatalog(t)

	if got := Candidates(catalog, types.NewSet("not-a-symptom")); len(got) != 0 {
		t.Errorf("Expected no candidates for unknown symptom, got %d", len(got))
	}
}
