package stop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

func TestTrailing_UpsideHit_DropsFromHigh(t *testing.T) {
	tr := NewTrailing(0.1)
	tr.Clear(candle.Candle{High: 100, Low: 100, Close: 100})
	tr.Update(candle.Candle{High: 120, Low: 110, Close: 115})
	assert.False(t, tr.UpsideHit())
	tr.Update(candle.Candle{High: 120, Low: 105, Close: 107})
	assert.True(t, tr.UpsideHit())
}

func TestTrailing_DownsideHit_RisesFromLow(t *testing.T) {
	tr := NewTrailing(0.1)
	tr.Clear(candle.Candle{High: 100, Low: 100, Close: 100})
	tr.Update(candle.Candle{High: 95, Low: 80, Close: 85})
	assert.False(t, tr.DownsideHit())
	tr.Update(candle.Candle{High: 95, Low: 80, Close: 89})
	assert.True(t, tr.DownsideHit())
}

func TestTrailing_ZeroThreshold_Disables(t *testing.T) {
	tr := NewTrailing(0)
	tr.Clear(candle.Candle{High: 100, Low: 100, Close: 100})
	tr.Update(candle.Candle{High: 100, Low: 1, Close: 1})
	assert.False(t, tr.UpsideHit())
	assert.False(t, tr.DownsideHit())
}
