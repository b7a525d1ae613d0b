// Package stop implements per-position stop-loss and take-profit side
// modules. Each side tracks entry price and running extrema and reports
// whether a long or short position should be force-closed.
package stop

import "github.com/ducminhle1904/crypto-dca-bot/pkg/candle"

// Side is a stop-loss or take-profit module. Clear is called once, at
// position open, with the entry candle. Update is called on every later
// candle while the position is open; the entry candle itself is not passed
// to Update.
type Side interface {
	Clear(c candle.Candle)
	Update(c candle.Candle)
	UpsideHit() bool
	DownsideHit() bool
}
