package types

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptySymptoms is returned when a disease is registered with no symptoms.
var ErrEmptySymptoms = errors.New("disease has no symptoms")

// Candidates maps a candidate disease to its full symptom set.
// It is rebuilt on every selection round and never cached.
type Candidates map[string]Set

// Catalog is the immutable disease-to-symptoms mapping the whole engine
// reads from. It is built once, shared by reference, and never mutated.
type Catalog struct {
	diseases map[string]Set
	names    []string
	all      Set
}

// NewCatalog builds a Catalog from the given disease-to-symptoms mapping.
// The input is deep-copied so later changes by the caller cannot leak in.
// Every disease must carry at least one symptom.
func NewCatalog(diseaseSymptoms map[string]Set) (*Catalog, error) {
	c := &Catalog{
		diseases: make(map[string]Set, len(diseaseSymptoms)),
		names:    make([]string, 0, len(diseaseSymptoms)),
		all:      make(Set),
	}
	for disease, symptoms := range diseaseSymptoms {
		if len(symptoms) == 0 {
			return nil, fmt.Errorf("disease %q: %w", disease, ErrEmptySymptoms)
		}
		c.diseases[disease] = symptoms.Clone()
		c.names = append(c.names, disease)
		for sym := range symptoms {
			c.all.Add(sym)
		}
	}
	sort.Strings(c.names)
	return c, nil
}

// Diseases returns the disease names in lexicographic order.
func (c *Catalog) Diseases() []string {
	return c.names
}

// Symptoms returns the symptom set of the disease, or nil if unknown.
// The returned set is shared and must not be modified.
func (c *Catalog) Symptoms(disease string) Set {
	return c.diseases[disease]
}

// AllSymptoms returns the union of every disease's symptoms.
// The returned set is shared and must not be modified.
func (c *Catalog) AllSymptoms() Set {
	return c.all
}

// Len returns the number of diseases in the catalog.
func (c *Catalog) Len() int {
	return len(c.diseases)
}
