package stop

import "github.com/ducminhle1904/crypto-dca-bot/pkg/candle"

// Noop never fires.
type Noop struct{}

// NewNoop creates a stop-loss/take-profit module that never triggers.
func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Clear(c candle.Candle)    {}
func (n *Noop) Update(c candle.Candle)   {}
func (n *Noop) UpsideHit() bool          { return false }
func (n *Noop) DownsideHit() bool        { return false }
