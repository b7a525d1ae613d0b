package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// fakeSignal emits a scripted advice sequence, maturing after `maturity` ticks.
type fakeSignal struct {
	maturity int
	ticks    int
	advices  []filter.Advice
	idx      int
}

func (f *fakeSignal) Maturity() int { return f.maturity }
func (f *fakeSignal) Mature() bool  { return f.ticks >= f.maturity }
func (f *fakeSignal) Update(candle.Candle) {
	if f.ticks > 0 && f.idx < len(f.advices)-1 {
		f.idx++
	}
	f.ticks++
}
func (f *fakeSignal) Advice() filter.Advice { return f.advices[f.idx] }

func TestSig_MaturityIsAdditive(t *testing.T) {
	base := &fakeSignal{maturity: 3}
	s := NewSig(base, filter.Current, 2)
	// policyMaturity = max(MidTrend(Current).Maturity()=1, Persistence(2).Maturity()=3) = 3
	assert.Equal(t, 3+3-1, s.Maturity())
}

func TestSig_CurrentPolicy_PersistenceGatesEmission(t *testing.T) {
	base := &fakeSignal{maturity: 1, advices: []filter.Advice{filter.Long}}
	s := NewSig(base, filter.Current, 1) // requires 2 consecutive Long advices
	s.Update(candle.Candle{})
	require.False(t, s.Mature()) // ticks=1, maturity=1+2-1=2
	assert.Equal(t, filter.None, s.Advice())

	s.Update(candle.Candle{})
	assert.True(t, s.Mature())
	assert.Equal(t, filter.Long, s.Advice())
}

func TestSig_BaseImmature_FeedsNoneIntoPolicies(t *testing.T) {
	base := &fakeSignal{maturity: 2, advices: []filter.Advice{filter.Long}}
	s := NewSig(base, filter.Current, 0)
	s.Update(candle.Candle{})
	assert.Equal(t, filter.None, s.Advice())
}
