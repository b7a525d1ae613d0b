package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA_MaturityAndValue(t *testing.T) {
	s := NewSMA(3)
	assert.Equal(t, 3, s.Maturity())
	assert.False(t, s.Mature())

	s.Update(1)
	s.Update(2)
	assert.False(t, s.Mature())
	s.Update(3)
	assert.True(t, s.Mature())
	assert.InDelta(t, 2.0, s.Value(), 1e-9)
}

func TestSMA_SlidesWindow(t *testing.T) {
	s := NewSMA(2)
	s.Update(10)
	s.Update(20)
	assert.InDelta(t, 15.0, s.Value(), 1e-9)
	s.Update(30)
	assert.InDelta(t, 25.0, s.Value(), 1e-9)
}

func TestSMA_PeriodOne(t *testing.T) {
	s := NewSMA(1)
	s.Update(5)
	assert.True(t, s.Mature())
	assert.InDelta(t, 5.0, s.Value(), 1e-9)
	s.Update(7)
	assert.InDelta(t, 7.0, s.Value(), 1e-9)
}
