package genetic

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
)

// Evaluator scores one chromosome. It must be a pure function of the
// chromosome — fitness must not depend on scheduling or evaluation order,
// since evaluation runs in parallel across the population.
type Evaluator[T chromosome.Chromosome] func(c T) float64

// Config bundles everything an Evolution run needs.
type Config[T chromosome.Chromosome] struct {
	PopulationSize int
	Generations    int
	HallOfFameSize int
	Seed           int64
	MaxWorkers     int
	SelectionRate  float64

	// NewChromosome builds a blank chromosome instance; Generate is called
	// on it by the Evolution driver to randomize it.
	NewChromosome func() T
	GenerateCtx   *chromosome.Context

	Evaluate    Evaluator[T]
	Selection   Selection[T]
	Crossover   Crossover[T]
	Mutation    Mutation[T]
	Reinsertion Reinsertion[T]
}

// Evolution runs the generational GA loop described in spec §4.7.
type Evolution[T chromosome.Chromosome] struct {
	cfg Config[T]
	rng *rand.Rand
}

// New creates an Evolution driver from a Config.
func New[T chromosome.Chromosome](cfg Config[T]) *Evolution[T] {
	return &Evolution[T]{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generation is one generation's recorded elite snapshot.
type Generation[T chromosome.Chromosome] struct {
	Index int
	Elite []Individual[T]
}

// Run executes the full generational loop and returns the elite snapshot of
// every generation, including the initial one (generation 0, before any
// selection/crossover/mutation has happened).
func (e *Evolution[T]) Run(ctx context.Context) ([]Generation[T], error) {
	population := e.initializePopulation()
	if err := e.evaluateParallel(ctx, population); err != nil {
		return nil, err
	}
	population = sortedDesc(population)

	generations := make([]Generation[T], 0, e.cfg.Generations+1)
	generations = append(generations, Generation[T]{Index: 0, Elite: elite(population, e.cfg.HallOfFameSize)})

	for g := 1; g <= e.cfg.Generations; g++ {
		selectN := int(float64(e.cfg.PopulationSize) * e.selectionRate())
		if selectN < 2 {
			selectN = 2
		}
		if selectN%2 != 0 {
			selectN++
		}
		selected := e.cfg.Selection.Select(e.rng, population, selectN)

		offspring := make([]Individual[T], len(selected))
		for i, ind := range selected {
			offspring[i] = Individual[T]{Chromosome: e.clone(ind.Chromosome), Fitness: MinFitness}
		}
		for k := 0; k+1 < len(offspring); k += 2 {
			e.cfg.Crossover.Cross(e.rng, offspring[k].Chromosome, offspring[k+1].Chromosome)
		}
		for i := range offspring {
			e.cfg.Mutation.Mutate(e.rng, offspring[i].Chromosome, e.cfg.GenerateCtx)
			offspring[i].Fitness = MinFitness
		}

		if err := e.evaluateParallel(ctx, offspring); err != nil {
			return nil, err
		}
		offspring = sortedDesc(offspring)

		population = e.cfg.Reinsertion.Reinsert(e.rng, population, offspring, e.cfg.PopulationSize, e.freshIndividual)
		population = sortedDesc(population)

		generations = append(generations, Generation[T]{Index: g, Elite: elite(population, e.cfg.HallOfFameSize)})
	}

	return generations, nil
}

func (e *Evolution[T]) selectionRate() float64 {
	if e.cfg.SelectionRate <= 0 {
		return 1.0
	}
	return e.cfg.SelectionRate
}

func (e *Evolution[T]) initializePopulation() []Individual[T] {
	population := make([]Individual[T], e.cfg.PopulationSize)
	for i := range population {
		population[i] = e.freshIndividual(e.rng)
	}
	return population
}

func (e *Evolution[T]) freshIndividual(rng *rand.Rand) Individual[T] {
	c := e.cfg.NewChromosome()
	c.Generate(rng, e.cfg.GenerateCtx)
	return Individual[T]{Chromosome: c, Fitness: MinFitness}
}

// clone deep-copies a chromosome by building a fresh instance and crossing
// every gene from the source into it — a generic deep copy that relies only
// on the composite-chromosome contract (Cross is self-inverse, so two
// crosses of every gene between a fresh individual and the source leaves the
// fresh individual holding the source's genes and the source unchanged).
func (e *Evolution[T]) clone(src T) T {
	dst := e.cfg.NewChromosome()
	dst.Generate(e.rng, e.cfg.GenerateCtx)
	n := src.Len()
	for i := 0; i < n; i++ {
		dst.Cross(src, i)
		src.Cross(dst, i)
	}
	return dst
}

// evaluateParallel scores every individual with Fitness == MinFitness,
// bounded by MaxWorkers. Fitness is a pure function of chromosome, so
// parallel evaluation cannot affect generation content; only wall-clock.
func (e *Evolution[T]) evaluateParallel(ctx context.Context, population []Individual[T]) error {
	g, gctx := errgroup.WithContext(ctx)
	if e.cfg.MaxWorkers > 0 {
		g.SetLimit(e.cfg.MaxWorkers)
	}
	for i := range population {
		i := i
		if population[i].Fitness != MinFitness {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			population[i].Fitness = e.cfg.Evaluate(population[i].Chromosome)
			return nil
		})
	}
	return g.Wait()
}

func elite[T chromosome.Chromosome](population []Individual[T], n int) []Individual[T] {
	if n > len(population) {
		n = len(population)
	}
	out := make([]Individual[T], n)
	copy(out, population[:n])
	return out
}
