// Package signal defines the strategies that consume candles and emit advice
// (Signal) or overbought/oversold state (Oscillator), plus the Sig/SigOsc
// compositional wrappers that gate a base signal through policy filters and,
// optionally, an oscillator.
package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// Signal is a strategy that consumes candles and emits an advice.
type Signal interface {
	Maturity() int
	Mature() bool
	Update(c candle.Candle)
	Advice() filter.Advice
}

// Oscillator reports overbought/oversold state from candles.
type Oscillator interface {
	Maturity() int
	Mature() bool
	Update(c candle.Candle)
	Overbought() bool
	Oversold() bool
}
