package tradingparams

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GenerateThenBuild_NeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		tp := New()
		tp.Generate(rng, nil)
		require.NotPanics(t, func() {
			built := tp.Build()
			assert.NotNil(t, built.Signal)
			assert.NotNil(t, built.StopLoss)
			assert.NotNil(t, built.TakeProfit)
		})
	}
}

func TestTradingParams_MutateAcrossFullGeneRange_NeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tp := New()
	tp.Generate(rng, nil)
	n := tp.Len()
	for i := 0; i < n; i++ {
		require.NotPanics(t, func() {
			tp.Mutate(rng, i, nil)
		})
	}
	require.NotPanics(t, func() { tp.Build() })
}

func TestTradingParams_CrossAcrossFullGeneRange_NeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := New()
	b := New()
	a.Generate(rng, nil)
	b.Generate(rng, nil)
	n := a.Len()
	for i := 0; i < n; i++ {
		require.NotPanics(t, func() {
			a.Cross(b, i)
		})
	}
	require.NotPanics(t, func() { a.Build() })
	require.NotPanics(t, func() { b.Build() })
}

func TestTradingParams_StrategyVariant_CanSelectAnyFactory(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tp := New()
	tp.Generate(rng, nil)
	assert.GreaterOrEqual(t, tp.strategy.Current(), 0)
	assert.Less(t, tp.strategy.Current(), 3)
}

func TestTradingParams_StopSlots_ShareTheSameFiveFactoryShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tp := New()
	tp.Generate(rng, nil)
	assert.Less(t, tp.stopLoss.Current(), 5)
	assert.Less(t, tp.takeProfit.Current(), 5)
}
