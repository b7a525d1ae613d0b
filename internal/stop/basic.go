package stop

import "github.com/ducminhle1904/crypto-dca-bot/pkg/candle"

// Basic is a fixed-percentage stop: Up is the take-profit-style upward
// threshold, Down the stop-loss-style downward threshold. A zero threshold
// disables that side of the check — the legacy behavior documented in the
// spec. A single Basic instance is typically configured with only one of Up
// or Down non-zero (the other left at 0) when used as a dedicated stop-loss
// or take-profit module; both may be set when one Basic module is meant to
// cover both directions.
type Basic struct {
	up, down float64
	entry    float64
	close    float64
}

// NewBasic creates a Basic stop with the given up/down fractional
// thresholds (e.g. 0.02 for 2%).
func NewBasic(up, down float64) *Basic {
	return &Basic{up: up, down: down}
}

func (b *Basic) Clear(c candle.Candle) {
	b.entry = c.Close
	b.close = c.Close
}

func (b *Basic) Update(c candle.Candle) {
	b.close = c.Close
}

// UpsideHit is true when a long position should close: price rose to the
// take-profit threshold, or fell to the stop-loss threshold.
func (b *Basic) UpsideHit() bool {
	if b.up > 0 && b.close >= b.entry+b.entry*b.up {
		return true
	}
	if b.down > 0 && b.close <= b.entry-b.entry*b.down {
		return true
	}
	return false
}

// DownsideHit is true when a short position should close: the symmetric
// mirror of UpsideHit.
func (b *Basic) DownsideHit() bool {
	if b.up > 0 && b.close <= b.entry-b.entry*b.up {
		return true
	}
	if b.down > 0 && b.close >= b.entry+b.entry*b.down {
		return true
	}
	return false
}
