package selector

import (
	"math/rand"
	"sort"

	"github.com/mrhapile/symptom-triage/pkg/scoring"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

// GeneticParams are the genetic strategy's hyperparameters.
type GeneticParams struct {
	// PopulationSize is the number of individuals seeded in generation zero.
	PopulationSize int

	// Generations is the number of evolution rounds.
	Generations int

	// MutationRate is the initial per-child mutation probability; it decays
	// by MutationDecay each generation down to MutationFloor.
	MutationRate  float64
	MutationFloor float64
	MutationDecay float64

	// EliteSize is the number of top individuals carried over unchanged.
	EliteSize int

	// TournamentSize is the number of individuals sampled (with replacement)
	// per parent selection.
	TournamentSize int

	// PadPopulation breeds one extra child per generation when
	// PopulationSize-EliteSize is odd. Off by default: the historical
	// behavior lets the population settle one individual short (49 with the
	// default sizes), and results depend on it.
	PadPopulation bool
}

// DefaultGeneticParams returns the contract hyperparameters.
func DefaultGeneticParams() GeneticParams {
	return GeneticParams{
		PopulationSize: types.DefaultPopulationSize,
		Generations:    types.DefaultGenerations,
		MutationRate:   types.DefaultMutationRate,
		MutationFloor:  types.DefaultMutationFloor,
		MutationDecay:  types.DefaultMutationDecay,
		EliteSize:      types.DefaultEliteSize,
		TournamentSize: types.DefaultTournamentSize,
	}
}

// Genetic evolves a population of candidate symptom batches with elitism,
// tournament selection, union crossover, swap mutation, and a greedy local
// search pass. All randomness flows through the injected generator, so a
// fixed seed reproduces the proposal exactly.
type Genetic struct {
	engine *scoring.Engine
	params GeneticParams
	rng    *rand.Rand
}

// NewGenetic returns a genetic strategy using the given scoring engine,
// hyperparameters, and random generator.
func NewGenetic(engine *scoring.Engine, params GeneticParams, rng *rand.Rand) *Genetic {
	return &Genetic{engine: engine, params: params, rng: rng}
}

func (g *Genetic) Name() string { return MethodGenetic }

// Select runs the full evolution loop and returns the individual with the
// best denial-penalized fitness in the final population.
func (g *Genetic) Select(req Request) types.Set {
	poolSet := types.NewSet(req.Pool...)

	population := make([]types.Set, g.params.PopulationSize)
	for i := range population {
		population[i] = g.randomSubset(req.Pool, req.N)
	}

	mutationRate := g.params.MutationRate
	for gen := 0; gen < g.params.Generations; gen++ {
		fitnesses := make([]float64, len(population))
		for i, individual := range population {
			fitnesses[i] = g.fitness(individual, req)
		}

		next := g.elites(population, fitnesses)

		breedingPairs := (g.params.PopulationSize - g.params.EliteSize) / 2
		for p := 0; p < breedingPairs; p++ {
			parent1 := g.tournament(population, fitnesses)
			parent2 := g.tournament(population, fitnesses)
			child1, child2 := g.crossover(parent1, parent2, req.N)
			g.mutate(child1, poolSet, mutationRate)
			g.mutate(child2, poolSet, mutationRate)
			next = append(next, child1, child2)
		}
		if g.params.PadPopulation && (g.params.PopulationSize-g.params.EliteSize)%2 == 1 {
			parent1 := g.tournament(population, fitnesses)
			parent2 := g.tournament(population, fitnesses)
			child, _ := g.crossover(parent1, parent2, req.N)
			g.mutate(child, poolSet, mutationRate)
			next = append(next, child)
		}

		mutationRate *= g.params.MutationDecay
		if mutationRate < g.params.MutationFloor {
			mutationRate = g.params.MutationFloor
		}

		for i := range next {
			next[i] = g.localSearch(next[i], poolSet, req)
		}
		population = next
	}

	best := population[0]
	bestFitness := g.fitness(best, req)
	for _, individual := range population[1:] {
		if f := g.fitness(individual, req); f > bestFitness {
			best = individual
			bestFitness = f
		}
	}
	return best
}

// fitness is the combined score of confirmed plus the individual, minus 0.2
// per denied symptom the individual holds.
func (g *Genetic) fitness(individual types.Set, req Request) float64 {
	score := g.engine.Combined(req.Confirmed.Union(individual), req.Candidates)
	for sym := range individual {
		if req.Denied.Has(sym) {
			score -= types.DeniedCountPenalty
		}
	}
	return score
}

// randomSubset draws a uniformly-random n-subset of pool without replacement.
func (g *Genetic) randomSubset(pool []string, n int) types.Set {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return types.NewSet(shuffled[:n]...)
}

// elites returns clones of the EliteSize fittest individuals.
func (g *Genetic) elites(population []types.Set, fitnesses []float64) []types.Set {
	indices := make([]int, len(population))
	for i := range indices {
		indices[i] = i
	}
	// Stable sort keeps population order among equal fitnesses.
	sort.SliceStable(indices, func(i, j int) bool {
		return fitnesses[indices[i]] > fitnesses[indices[j]]
	})
	count := g.params.EliteSize
	if count > len(population) {
		count = len(population)
	}
	out := make([]types.Set, 0, g.params.PopulationSize)
	for _, idx := range indices[:count] {
		out = append(out, population[idx].Clone())
	}
	return out
}

// tournament samples TournamentSize individuals with replacement and returns
// the fittest; the earliest draw wins ties.
func (g *Genetic) tournament(population []types.Set, fitnesses []float64) types.Set {
	bestIdx := g.rng.Intn(len(population))
	for i := 1; i < g.params.TournamentSize; i++ {
		idx := g.rng.Intn(len(population))
		if fitnesses[idx] > fitnesses[bestIdx] {
			bestIdx = idx
		}
	}
	return population[bestIdx]
}

// crossover unions both parents, shuffles and truncates the union down to n
// (or tops it up from the union's complement when short), and returns two
// independent copies of the one resulting set. Producing identical twins is
// the historical recombination rule; convergence depends on it.
func (g *Genetic) crossover(parent1, parent2 types.Set, n int) (types.Set, types.Set) {
	union := parent1.Union(parent2)
	combined := union.Sorted()
	if len(combined) > n {
		g.rng.Shuffle(len(combined), func(i, j int) {
			combined[i], combined[j] = combined[j], combined[i]
		})
		combined = combined[:n]
	}
	child := types.NewSet(combined...)
	for len(child) < n {
		remaining := union.Diff(child).Sorted()
		if len(remaining) == 0 {
			break
		}
		child.Add(remaining[g.rng.Intn(len(remaining))])
	}
	return child, child.Clone()
}

// mutate replaces, with the current mutation probability, one random member
// of the individual with a random pool symptom it does not already hold.
func (g *Genetic) mutate(individual types.Set, pool types.Set, rate float64) {
	if g.rng.Float64() >= rate {
		return
	}
	available := pool.Diff(individual).Sorted()
	if len(available) == 0 {
		return
	}
	members := individual.Sorted()
	individual.Remove(members[g.rng.Intn(len(members))])
	individual.Add(available[g.rng.Intn(len(available))])
}

// localSearch tries one random single-symptom swap per held symptom and keeps
// the best strictly-improving variant. It scores with the raw combined score,
// without the denial penalty; the asymmetry with fitness is deliberate.
func (g *Genetic) localSearch(individual types.Set, pool types.Set, req Request) types.Set {
	best := individual.Clone()
	bestScore := g.engine.Combined(req.Confirmed.Union(individual), req.Candidates)
	remaining := pool.Diff(individual).Sorted()
	if len(remaining) == 0 {
		return best
	}
	for _, sym := range individual.Sorted() {
		variant := individual.Clone()
		variant.Remove(sym)
		variant.Add(remaining[g.rng.Intn(len(remaining))])
		if score := g.engine.Combined(req.Confirmed.Union(variant), req.Candidates); score > bestScore {
			bestScore = score
			best = variant
		}
	}
	return best
}
