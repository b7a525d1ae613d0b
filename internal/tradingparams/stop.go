package tradingparams

import (
	"math/rand"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stop"
)

// stopBuilder is implemented by every stop-side gene; buildStop realizes the
// gene's current values into a concrete stop.Side. The same factory set is
// used for both the stop-loss and the take-profit slot.
type stopBuilder interface {
	buildStop() stop.Side
}

func stopFactories() []chromosome.Factory {
	return []chromosome.Factory{
		func() chromosome.Chromosome { return newNoopGene() },
		func() chromosome.Chromosome { return newBasicGene() },
		func() chromosome.Chromosome { return newTrailingGene() },
		func() chromosome.Chromosome { return newBasicPlusTrailingGene() },
		func() chromosome.Chromosome { return newTrendingGene() },
	}
}

type noopGene struct {
	*chromosome.Product
}

func newNoopGene() *noopGene {
	g := &noopGene{}
	g.Product = chromosome.NewProduct(nil, nil)
	return g
}

func (g *noopGene) buildStop() stop.Side { return stop.NewNoop() }

type basicGene struct {
	*chromosome.Product
	up, down float64
}

func newBasicGene() *basicGene {
	g := &basicGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() float64 { return g.up }, func(v float64) { g.up = v }, sampleFloat(0, 0.2)),
		chromosome.NewLeaf(func() float64 { return g.down }, func(v float64) { g.down = v }, sampleFloat(0, 0.2)),
	})
	return g
}

func (g *basicGene) buildStop() stop.Side { return stop.NewBasic(g.up, g.down) }

type trailingGene struct {
	*chromosome.Product
	threshold float64
}

func newTrailingGene() *trailingGene {
	g := &trailingGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() float64 { return g.threshold }, func(v float64) { g.threshold = v }, sampleFloat(0, 0.2)),
	})
	return g
}

func (g *trailingGene) buildStop() stop.Side { return stop.NewTrailing(g.threshold) }

type basicPlusTrailingGene struct {
	*chromosome.Product
	up, down, trailing float64
}

func newBasicPlusTrailingGene() *basicPlusTrailingGene {
	g := &basicPlusTrailingGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() float64 { return g.up }, func(v float64) { g.up = v }, sampleFloat(0, 0.2)),
		chromosome.NewLeaf(func() float64 { return g.down }, func(v float64) { g.down = v }, sampleFloat(0, 0.2)),
		chromosome.NewLeaf(func() float64 { return g.trailing }, func(v float64) { g.trailing = v }, sampleFloat(0, 0.2)),
	})
	return g
}

func (g *basicPlusTrailingGene) buildStop() stop.Side {
	return stop.NewBasicPlusTrailing(g.up, g.down, g.trailing)
}

type trendingGene struct {
	*chromosome.Product
	minThreshold, maxThreshold float64
	period                     int
	lock                       bool
}

func newTrendingGene() *trendingGene {
	g := &trendingGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() float64 { return g.minThreshold }, func(v float64) { g.minThreshold = v }, sampleFloat(0, 0.1)),
		chromosome.NewLeaf(func() float64 { return g.maxThreshold }, func(v float64) { g.maxThreshold = v }, sampleFloat(0.1, 0.3)),
		chromosome.NewLeaf(func() int { return g.period }, func(v int) { g.period = v }, sampleInt(5, 30)),
		chromosome.NewLeaf(func() bool { return g.lock }, func(v bool) { g.lock = v }, sampleBool),
	})
	return g
}

func (g *trendingGene) buildStop() stop.Side {
	return stop.NewTrending(g.minThreshold, g.maxThreshold, g.period, g.lock)
}

func sampleBool(rng *rand.Rand) bool { return rng.Intn(2) == 1 }
