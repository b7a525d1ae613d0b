package tradingparams

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
)

func TestSigGene_BuildSignal_WiresPinnedPeriods(t *testing.T) {
	g := newSigGene()
	ctx := &chromosome.Context{Pins: map[int]any{0: 5, 1: 30, 2: 0, 3: 1}}
	g.Generate(rand.New(rand.NewSource(1)), ctx)

	assert.Equal(t, 5, g.fastPeriod)
	assert.Equal(t, 30, g.slowPeriod)

	sig := g.buildSignal()
	require.NotNil(t, sig)
	assert.Greater(t, sig.Maturity(), 0)
}

func TestSigOscGene_BuildSignal_WiresOscillatorThresholds(t *testing.T) {
	g := newSigOscGene()
	ctx := &chromosome.Context{Pins: map[int]any{
		0: 5, 1: 30, 2: 0, 3: 1, 4: 14, 5: 25.0, 6: 75.0,
	}}
	g.Generate(rand.New(rand.NewSource(1)), ctx)

	assert.Equal(t, 14, g.rsiPeriod)
	assert.Equal(t, 25.0, g.oversold)
	assert.Equal(t, 75.0, g.overbought)

	sig := g.buildSignal()
	require.NotNil(t, sig)
	assert.GreaterOrEqual(t, sig.Maturity(), g.rsiPeriod)
}

func TestFourWeekRuleGene_BuildSignal_WiresPeriodAndMA(t *testing.T) {
	g := newFourWeekRuleGene()
	ctx := &chromosome.Context{Pins: map[int]any{0: 28, 1: 14, 2: 0, 3: 1}}
	g.Generate(rand.New(rand.NewSource(1)), ctx)

	assert.Equal(t, 28, g.period)
	assert.Equal(t, 14, g.maPeriod)

	sig := g.buildSignal()
	require.NotNil(t, sig)
	assert.Greater(t, sig.Maturity(), g.period)
}

func TestStrategyFactories_HasThreeVariants(t *testing.T) {
	factories := strategyFactories()
	assert.Len(t, factories, 3)
	for _, f := range factories {
		c := f()
		assert.Greater(t, c.Len(), 0)
	}
}

func TestSampleInt_StaysWithinBounds(t *testing.T) {
	sample := sampleInt(10, 20)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := sample(rng)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}
}

func TestSampleFloat_StaysWithinBounds(t *testing.T) {
	sample := sampleFloat(0.1, 0.5)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := sample(rng)
		assert.GreaterOrEqual(t, v, 0.1)
		assert.Less(t, v, 0.5)
	}
}
