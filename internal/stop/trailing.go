package stop

import "github.com/ducminhle1904/crypto-dca-bot/pkg/candle"

// Trailing closes a long when price falls threshold% below the high seen
// since open, and a short when price rises threshold% above the low seen
// since open. threshold == 0 disables the filter.
type Trailing struct {
	threshold float64
	highSinceOpen float64
	lowSinceOpen  float64
	close         float64
}

// NewTrailing creates a Trailing stop with the given fractional threshold.
func NewTrailing(threshold float64) *Trailing {
	return &Trailing{threshold: threshold}
}

func (t *Trailing) Clear(c candle.Candle) {
	t.highSinceOpen = c.High
	t.lowSinceOpen = c.Low
	t.close = c.Close
}

func (t *Trailing) Update(c candle.Candle) {
	if c.High > t.highSinceOpen {
		t.highSinceOpen = c.High
	}
	if c.Low < t.lowSinceOpen {
		t.lowSinceOpen = c.Low
	}
	t.close = c.Close
}

func (t *Trailing) UpsideHit() bool {
	if t.threshold <= 0 {
		return false
	}
	return t.close <= t.highSinceOpen*(1-t.threshold)
}

func (t *Trailing) DownsideHit() bool {
	if t.threshold <= 0 {
		return false
	}
	return t.close >= t.lowSinceOpen*(1+t.threshold)
}
