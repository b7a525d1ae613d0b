package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

func TestRSIOscillator_Thresholds(t *testing.T) {
	r := NewRSIOscillator(2, 30, 70)
	// Drive RSI to 100 with all gains, then check the overbought/oversold gate.
	r.Update(candle.Candle{Close: 1})
	r.Update(candle.Candle{Close: 2})
	r.Update(candle.Candle{Close: 3})
	assert.True(t, r.Mature())
	assert.True(t, r.Overbought())
	assert.False(t, r.Oversold())
}

func TestRSIOscillator_OversoldOnLosses(t *testing.T) {
	r := NewRSIOscillator(2, 30, 70)
	r.Update(candle.Candle{Close: 3})
	r.Update(candle.Candle{Close: 2})
	r.Update(candle.Candle{Close: 1})
	assert.True(t, r.Mature())
	assert.True(t, r.Oversold())
	assert.False(t, r.Overbought())
}

func TestRSIOscillator_Immature(t *testing.T) {
	r := NewRSIOscillator(5, 30, 70)
	r.Update(candle.Candle{Close: 1})
	assert.False(t, r.Mature())
}
