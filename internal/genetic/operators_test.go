package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
)

func individualsWithFitness(fitnesses ...float64) []Individual[*intChromo] {
	out := make([]Individual[*intChromo], len(fitnesses))
	for i, f := range fitnesses {
		out[i] = Individual[*intChromo]{Chromosome: newIntChromo(), Fitness: f}
	}
	return out
}

func TestSortedDesc_OrdersByFitnessDescending(t *testing.T) {
	pop := individualsWithFitness(3, 1, 2)
	sorted := sortedDesc(pop)
	assert.Equal(t, []float64{3, 2, 1}, []float64{sorted[0].Fitness, sorted[1].Fitness, sorted[2].Fitness})
}

func TestSortedDesc_StableOnTies(t *testing.T) {
	a := Individual[*intChromo]{Chromosome: newIntChromo(), Fitness: 5}
	b := Individual[*intChromo]{Chromosome: newIntChromo(), Fitness: 5}
	sorted := sortedDesc([]Individual[*intChromo]{a, b})
	assert.Same(t, a.Chromosome, sorted[0].Chromosome)
	assert.Same(t, b.Chromosome, sorted[1].Chromosome)
}

func TestSortedDesc_DoesNotMutateInput(t *testing.T) {
	pop := individualsWithFitness(1, 2)
	_ = sortedDesc(pop)
	assert.Equal(t, 1.0, pop[0].Fitness)
}

func TestTournamentSelection_FullSizeAlwaysPicksBest(t *testing.T) {
	pop := individualsWithFitness(1, 2, 100, 3)
	sel := TournamentSelection[*intChromo]{TournamentSize: len(pop)}
	rng := rand.New(rand.NewSource(1))
	out := sel.Select(rng, pop, 5)
	require.Len(t, out, 5)
	for _, ind := range out {
		assert.Equal(t, 100.0, ind.Fitness)
	}
}

func TestUniformCrossover_ZeroRate_NeverCrosses(t *testing.T) {
	a, b := newIntChromo(), newIntChromo()
	a.v, b.v = 1, 2
	x := UniformCrossover[*intChromo]{Rate: 0}
	x.Cross(rand.New(rand.NewSource(1)), a, b)
	assert.Equal(t, 1, a.v)
	assert.Equal(t, 2, b.v)
}

func TestUniformCrossover_FullRate_AlwaysCrosses(t *testing.T) {
	a, b := newIntChromo(), newIntChromo()
	a.v, b.v = 1, 2
	x := UniformCrossover[*intChromo]{Rate: 1}
	x.Cross(rand.New(rand.NewSource(1)), a, b)
	assert.Equal(t, 2, a.v)
	assert.Equal(t, 1, b.v)
}

func TestUniformMutation_ZeroRate_NeverMutates(t *testing.T) {
	c := newIntChromo()
	c.v = 42
	m := UniformMutation[*intChromo]{Rate: 0}
	m.Mutate(rand.New(rand.NewSource(1)), c, nil)
	assert.Equal(t, 42, c.v)
}

func TestUniformMutation_FullRate_RespectsPin(t *testing.T) {
	c := newIntChromo()
	c.v = 42
	m := UniformMutation[*intChromo]{Rate: 1}
	m.Mutate(rand.New(rand.NewSource(1)), c, &chromosome.Context{Pins: map[int]any{0: 7}})
	assert.Equal(t, 7, c.v)
}

func TestEliteReinsertion_FillsToPopulationSize(t *testing.T) {
	parents := individualsWithFitness(5, 4, 3)
	offspring := individualsWithFitness(10, 1)
	r := EliteReinsertion[*intChromo]{FreshFraction: 0}
	out := r.Reinsert(rand.New(rand.NewSource(1)), parents, offspring, 4, func(rng *rand.Rand) Individual[*intChromo] {
		return Individual[*intChromo]{Chromosome: newIntChromo(), Fitness: -1}
	})
	assert.Len(t, out, 4)
	assert.Equal(t, 10.0, out[0].Fitness)
}

func TestEliteReinsertion_FreshFractionUsesFreshIndividuals(t *testing.T) {
	parents := individualsWithFitness(5)
	offspring := individualsWithFitness(10)
	r := EliteReinsertion[*intChromo]{FreshFraction: 0.5}
	out := r.Reinsert(rand.New(rand.NewSource(1)), parents, offspring, 4, func(rng *rand.Rand) Individual[*intChromo] {
		return Individual[*intChromo]{Chromosome: newIntChromo(), Fitness: -99}
	})
	require.Len(t, out, 4)
	freshCount := 0
	for _, ind := range out {
		if ind.Fitness == -99 {
			freshCount++
		}
	}
	assert.Equal(t, 2, freshCount)
}

func TestFitnessReinsertion_KeepsFittestAcrossBoth(t *testing.T) {
	parents := individualsWithFitness(1, 2)
	offspring := individualsWithFitness(3, 4)
	r := FitnessReinsertion[*intChromo]{}
	out := r.Reinsert(rand.New(rand.NewSource(1)), parents, offspring, 2, nil)
	assert.Equal(t, 4.0, out[0].Fitness)
	assert.Equal(t, 3.0, out[1].Fitness)
}

func TestPureReinsertion_ReplacesWithOffspringOnly(t *testing.T) {
	parents := individualsWithFitness(100, 100)
	offspring := individualsWithFitness(1, 2)
	r := PureReinsertion[*intChromo]{}
	out := r.Reinsert(rand.New(rand.NewSource(1)), parents, offspring, 2, nil)
	assert.Equal(t, 2.0, out[0].Fitness)
	assert.Equal(t, 1.0, out[1].Fitness)
}
