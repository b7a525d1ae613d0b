package stop

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/indicator"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// Trending behaves like Basic but with a threshold derived from trend
// strength: threshold = lerp(minThreshold, maxThreshold, ADX/100). If Lock
// is set, the threshold is frozen at the value observed when the position
// opened; otherwise it tracks ADX continuously.
type Trending struct {
	minThreshold, maxThreshold float64
	lock                       bool
	adx                        *indicator.ADX
	threshold                  float64
	entry                      float64
	close                      float64
}

// NewTrending creates a Trending stop. period sizes the internal ADX.
func NewTrending(minThreshold, maxThreshold float64, period int, lock bool) *Trending {
	return &Trending{
		minThreshold: minThreshold,
		maxThreshold: maxThreshold,
		lock:         lock,
		adx:          indicator.NewADX(period),
	}
}

func (t *Trending) currentThreshold() float64 {
	adx := 0.0
	if t.adx.Mature() {
		adx = t.adx.Value()
	}
	return lerp(t.minThreshold, t.maxThreshold, adx/100)
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}

func (t *Trending) Clear(c candle.Candle) {
	t.entry = c.Close
	t.close = c.Close
	t.adx.UpdateHLC(c.High, c.Low, c.Close)
	t.threshold = t.currentThreshold()
}

func (t *Trending) Update(c candle.Candle) {
	t.close = c.Close
	t.adx.UpdateHLC(c.High, c.Low, c.Close)
	if !t.lock {
		t.threshold = t.currentThreshold()
	}
}

func (t *Trending) UpsideHit() bool {
	if t.threshold <= 0 {
		return false
	}
	if t.close >= t.entry*(1+t.threshold) {
		return true
	}
	return t.close <= t.entry*(1-t.threshold)
}

func (t *Trending) DownsideHit() bool {
	if t.threshold <= 0 {
		return false
	}
	if t.close <= t.entry*(1-t.threshold) {
		return true
	}
	return t.close >= t.entry*(1+t.threshold)
}
