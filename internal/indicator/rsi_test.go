package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSI_Maturity(t *testing.T) {
	r := NewRSI(2)
	assert.Equal(t, 3, r.Maturity())
	r.Update(1)
	r.Update(2)
	assert.False(t, r.Mature())
	r.Update(3)
	assert.True(t, r.Mature())
}

func TestRSI_AllGains_Is100(t *testing.T) {
	r := NewRSI(2)
	r.Update(1)
	r.Update(2)
	r.Update(3)
	assert.InDelta(t, 100.0, r.Value(), 1e-9)
}

func TestRSI_AllLosses_Is0(t *testing.T) {
	r := NewRSI(2)
	r.Update(3)
	r.Update(2)
	r.Update(1)
	assert.InDelta(t, 0.0, r.Value(), 1e-9)
}

func TestRSI_NoChange_Is0(t *testing.T) {
	r := NewRSI(2)
	r.Update(5)
	r.Update(5)
	r.Update(5)
	assert.InDelta(t, 0.0, r.Value(), 1e-9)
}
