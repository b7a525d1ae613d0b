package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMMA_SeedsFromSMA(t *testing.T) {
	s := NewSMMA(2)
	assert.Equal(t, 2, s.Maturity())
	s.Update(10)
	assert.False(t, s.Mature())
	s.Update(20)
	assert.True(t, s.Mature())
	assert.InDelta(t, 15.0, s.Value(), 1e-9)
}

func TestSMMA_WildersSmoothingAfterSeed(t *testing.T) {
	s := NewSMMA(2)
	s.Update(10)
	s.Update(20)
	s.Update(30)
	// (15*(2-1) + 30) / 2 = 22.5
	assert.InDelta(t, 22.5, s.Value(), 1e-9)
}
