// Package genetic implements the generational genetic-algorithm driver:
// evaluate, sort, select, cross, mutate, reinsert. It is generic over any
// chromosome type satisfying the composite-chromosome contract in package
// chromosome; selection, crossover, mutation, and reinsertion are pluggable
// operator traits.
package genetic

import "math"

// MinFitness is the default fitness of an uninitialized Individual.
const MinFitness = -math.MaxFloat64

// Individual pairs a chromosome with its fitness.
type Individual[T any] struct {
	Chromosome T
	Fitness    float64
}

// NewIndividual wraps a chromosome with the default (uninitialized) fitness.
func NewIndividual[T any](c T) Individual[T] {
	return Individual[T]{Chromosome: c, Fitness: MinFitness}
}
