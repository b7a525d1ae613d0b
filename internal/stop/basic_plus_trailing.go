package stop

import "github.com/ducminhle1904/crypto-dca-bot/pkg/candle"

// BasicPlusTrailing triggers a close when either its Basic or its Trailing
// component would trigger.
type BasicPlusTrailing struct {
	basic    *Basic
	trailing *Trailing
}

// NewBasicPlusTrailing composes a Basic and a Trailing stop.
func NewBasicPlusTrailing(up, down, trailingThreshold float64) *BasicPlusTrailing {
	return &BasicPlusTrailing{
		basic:    NewBasic(up, down),
		trailing: NewTrailing(trailingThreshold),
	}
}

func (b *BasicPlusTrailing) Clear(c candle.Candle) {
	b.basic.Clear(c)
	b.trailing.Clear(c)
}

func (b *BasicPlusTrailing) Update(c candle.Candle) {
	b.basic.Update(c)
	b.trailing.Update(c)
}

func (b *BasicPlusTrailing) UpsideHit() bool {
	return b.basic.UpsideHit() || b.trailing.UpsideHit()
}

func (b *BasicPlusTrailing) DownsideHit() bool {
	return b.basic.DownsideHit() || b.trailing.DownsideHit()
}
