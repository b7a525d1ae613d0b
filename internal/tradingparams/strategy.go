// Package tradingparams instantiates the composite chromosome the genetic
// driver optimizes over: a choice of entry strategy, a stop-loss side and a
// take-profit side, each itself a tagged-variant union over the concrete
// signal/stop implementations in internal/signal and internal/stop.
package tradingparams

import (
	"math/rand"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/internal/indicator"
	"github.com/ducminhle1904/crypto-dca-bot/internal/signal"
)

// signalBuilder is implemented by every strategy variant's gene; Build
// realizes the gene's current values into a concrete signal.Signal.
type signalBuilder interface {
	buildSignal() signal.Signal
}

func strategyFactories() []chromosome.Factory {
	return []chromosome.Factory{
		func() chromosome.Chromosome { return newSigGene() },
		func() chromosome.Chromosome { return newSigOscGene() },
		func() chromosome.Chromosome { return newFourWeekRuleGene() },
	}
}

// sigGene parameterizes a MA-crossover signal gated only by MidTrend and
// Persistence (no oscillator).
type sigGene struct {
	*chromosome.Product
	fastPeriod      int
	slowPeriod      int
	midTrendPolicy  int
	persistenceK    int
}

func newSigGene() *sigGene {
	g := &sigGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() int { return g.fastPeriod }, func(v int) { g.fastPeriod = v }, sampleInt(2, 20)),
		chromosome.NewLeaf(func() int { return g.slowPeriod }, func(v int) { g.slowPeriod = v }, sampleInt(21, 100)),
		chromosome.NewLeaf(func() int { return g.midTrendPolicy }, func(v int) { g.midTrendPolicy = v }, sampleInt(0, 2)),
		chromosome.NewLeaf(func() int { return g.persistenceK }, func(v int) { g.persistenceK = v }, sampleInt(0, 4)),
	})
	return g
}

func (g *sigGene) buildSignal() signal.Signal {
	fast := indicator.NewEMA(g.fastPeriod)
	slow := indicator.NewEMA(g.slowPeriod)
	base := signal.NewMACrossover(fast, slow)
	return signal.NewSig(base, filter.MidTrendPolicy(g.midTrendPolicy), g.persistenceK)
}

// sigOscGene parameterizes the same MA-crossover signal, additionally gated
// through an RSI oscillator (SigOsc).
type sigOscGene struct {
	*chromosome.Product
	fastPeriod     int
	slowPeriod     int
	midTrendPolicy int
	persistenceK   int
	rsiPeriod      int
	oversold       float64
	overbought     float64
}

func newSigOscGene() *sigOscGene {
	g := &sigOscGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() int { return g.fastPeriod }, func(v int) { g.fastPeriod = v }, sampleInt(2, 20)),
		chromosome.NewLeaf(func() int { return g.slowPeriod }, func(v int) { g.slowPeriod = v }, sampleInt(21, 100)),
		chromosome.NewLeaf(func() int { return g.midTrendPolicy }, func(v int) { g.midTrendPolicy = v }, sampleInt(0, 2)),
		chromosome.NewLeaf(func() int { return g.persistenceK }, func(v int) { g.persistenceK = v }, sampleInt(0, 4)),
		chromosome.NewLeaf(func() int { return g.rsiPeriod }, func(v int) { g.rsiPeriod = v }, sampleInt(5, 30)),
		chromosome.NewLeaf(func() float64 { return g.oversold }, func(v float64) { g.oversold = v }, sampleFloat(15, 40)),
		chromosome.NewLeaf(func() float64 { return g.overbought }, func(v float64) { g.overbought = v }, sampleFloat(60, 85)),
	})
	return g
}

func (g *sigOscGene) buildSignal() signal.Signal {
	fast := indicator.NewEMA(g.fastPeriod)
	slow := indicator.NewEMA(g.slowPeriod)
	base := signal.NewMACrossover(fast, slow)
	sig := signal.NewSig(base, filter.MidTrendPolicy(g.midTrendPolicy), g.persistenceK)
	osc := signal.NewRSIOscillator(g.rsiPeriod, g.oversold, g.overbought)
	return signal.NewSigOsc(sig, osc)
}

// fourWeekRuleGene parameterizes the period-window breakout signal, gated
// through MidTrend and Persistence like the other strategy variants; the
// liquidation line is an EMA of the given period.
type fourWeekRuleGene struct {
	*chromosome.Product
	period         int
	maPeriod       int
	midTrendPolicy int
	persistenceK   int
}

func newFourWeekRuleGene() *fourWeekRuleGene {
	g := &fourWeekRuleGene{}
	g.Product = chromosome.NewProduct(nil, []chromosome.ScalarLeaf{
		chromosome.NewLeaf(func() int { return g.period }, func(v int) { g.period = v }, sampleInt(2, 300)),
		chromosome.NewLeaf(func() int { return g.maPeriod }, func(v int) { g.maPeriod = v }, sampleInt(2, 300)),
		chromosome.NewLeaf(func() int { return g.midTrendPolicy }, func(v int) { g.midTrendPolicy = v }, sampleInt(0, 2)),
		chromosome.NewLeaf(func() int { return g.persistenceK }, func(v int) { g.persistenceK = v }, sampleInt(0, 4)),
	})
	return g
}

func (g *fourWeekRuleGene) buildSignal() signal.Signal {
	base := signal.NewFourWeekRule(g.period, indicator.NewEMA(g.maPeriod))
	return signal.NewSig(base, filter.MidTrendPolicy(g.midTrendPolicy), g.persistenceK)
}

func sampleInt(lo, hi int) func(*rand.Rand) int {
	return func(rng *rand.Rand) int { return lo + rng.Intn(hi-lo+1) }
}

func sampleFloat(lo, hi float64) func(*rand.Rand) float64 {
	return func(rng *rand.Rand) float64 { return lo + rng.Float64()*(hi-lo) }
}
