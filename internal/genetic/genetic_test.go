package genetic

import (
	"math/rand"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
)

// intChromo is a minimal one-gene chromosome used across this package's
// tests: a single int leaf sampled uniformly in [0, 100).
type intChromo struct {
	*chromosome.Product
	v int
}

func newIntChromo() *intChromo {
	c := &intChromo{}
	c.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{chromosome.NewLeaf(
		func() int { return c.v },
		func(x int) { c.v = x },
		func(rng *rand.Rand) int { return rng.Intn(100) },
	)})
	return c
}

func intFitness(c *intChromo) float64 {
	return float64(c.v)
}
