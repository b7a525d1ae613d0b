package genetic

import (
	"math/rand"
	"sort"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
)

// Selection draws n individuals from a sorted (fitness-descending)
// population into an offspring-parent buffer.
type Selection[T chromosome.Chromosome] interface {
	Select(rng *rand.Rand, population []Individual[T], n int) []Individual[T]
}

// Crossover swaps genes between two chromosomes in place, per-gene, with
// some probability.
type Crossover[T chromosome.Chromosome] interface {
	Cross(rng *rand.Rand, a, b T)
}

// Mutation regenerates genes of a chromosome in place, per-gene, with some
// probability.
type Mutation[T chromosome.Chromosome] interface {
	Mutate(rng *rand.Rand, c T, ctx *chromosome.Context)
}

// Reinsertion combines evaluated parents and offspring into the next
// generation's population, refilling to populationSize.
type Reinsertion[T chromosome.Chromosome] interface {
	Reinsert(rng *rand.Rand, parents, offspring []Individual[T], populationSize int, fresh func(rng *rand.Rand) Individual[T]) []Individual[T]
}

// TournamentSelection draws each offspring slot by running a tournament of
// tournamentSize random draws (with replacement) and keeping the fittest.
type TournamentSelection[T chromosome.Chromosome] struct {
	TournamentSize int
}

func (s TournamentSelection[T]) Select(rng *rand.Rand, population []Individual[T], n int) []Individual[T] {
	out := make([]Individual[T], 0, n)
	for i := 0; i < n; i++ {
		best := population[rng.Intn(len(population))]
		for j := 1; j < s.TournamentSize; j++ {
			cand := population[rng.Intn(len(population))]
			if cand.Fitness > best.Fitness {
				best = cand
			}
		}
		out = append(out, best)
	}
	return out
}

// UniformCrossover swaps each gene independently with probability Rate.
// A zero Rate never swaps; no default rate is substituted (cmd/optimize
// configures 0.5).
type UniformCrossover[T chromosome.Chromosome] struct {
	Rate float64
}

func (x UniformCrossover[T]) Cross(rng *rand.Rand, a, b T) {
	n := a.Len()
	for i := 0; i < n; i++ {
		if rng.Float64() < x.Rate {
			a.Cross(b, i)
		}
	}
}

// UniformMutation regenerates each gene independently with probability Rate.
// A zero Rate never mutates; no default rate is substituted (cmd/optimize
// configures 0.1).
type UniformMutation[T chromosome.Chromosome] struct {
	Rate float64
}

func (m UniformMutation[T]) Mutate(rng *rand.Rand, c T, ctx *chromosome.Context) {
	n := c.Len()
	for i := 0; i < n; i++ {
		if rng.Float64() < m.Rate {
			c.Mutate(rng, i, ctx)
		}
	}
}

// EliteReinsertion keeps the best parents to fill the population, optionally
// generating a FreshFraction of the slots entirely fresh instead.
type EliteReinsertion[T chromosome.Chromosome] struct {
	FreshFraction float64
}

func (r EliteReinsertion[T]) Reinsert(rng *rand.Rand, parents, offspring []Individual[T], populationSize int, fresh func(rng *rand.Rand) Individual[T]) []Individual[T] {
	sorted := sortedDesc(offspring)
	out := make([]Individual[T], 0, populationSize)
	out = append(out, sorted...)

	freshCount := int(float64(populationSize) * r.FreshFraction)
	parentsSorted := sortedDesc(parents)
	pi := 0
	for len(out) < populationSize-freshCount && pi < len(parentsSorted) {
		out = append(out, parentsSorted[pi])
		pi++
	}
	for len(out) < populationSize {
		out = append(out, fresh(rng))
	}
	return out[:populationSize]
}

// FitnessReinsertion over-produces offspring and truncates to the fittest
// populationSize individuals across parents and offspring combined.
type FitnessReinsertion[T chromosome.Chromosome] struct{}

func (FitnessReinsertion[T]) Reinsert(rng *rand.Rand, parents, offspring []Individual[T], populationSize int, fresh func(rng *rand.Rand) Individual[T]) []Individual[T] {
	combined := make([]Individual[T], 0, len(parents)+len(offspring))
	combined = append(combined, parents...)
	combined = append(combined, offspring...)
	sorted := sortedDesc(combined)
	if len(sorted) > populationSize {
		sorted = sorted[:populationSize]
	}
	for len(sorted) < populationSize {
		sorted = append(sorted, fresh(rng))
	}
	return sorted
}

// PureReinsertion replaces the entire population with exactly populationSize
// offspring.
type PureReinsertion[T chromosome.Chromosome] struct{}

func (PureReinsertion[T]) Reinsert(rng *rand.Rand, parents, offspring []Individual[T], populationSize int, fresh func(rng *rand.Rand) Individual[T]) []Individual[T] {
	sorted := sortedDesc(offspring)
	for len(sorted) < populationSize {
		sorted = append(sorted, fresh(rng))
	}
	if len(sorted) > populationSize {
		sorted = sorted[:populationSize]
	}
	return sorted
}

// sortedDesc returns a fitness-descending copy of individuals; ties are
// broken by original index, giving a stable sort.
func sortedDesc[T chromosome.Chromosome](individuals []Individual[T]) []Individual[T] {
	out := make([]Individual[T], len(individuals))
	copy(out, individuals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fitness > out[j].Fitness
	})
	return out
}
