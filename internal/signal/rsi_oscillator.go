package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/indicator"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// RSIOscillator reports overbought/oversold using a classic RSI threshold
// pair, grounded on the teacher's RSI defaults (70/30,
// internal/indicators/rsi.go).
type RSIOscillator struct {
	rsi        *indicator.RSI
	overbought float64
	oversold   float64
}

// NewRSIOscillator builds an RSI-based oscillator.
func NewRSIOscillator(period int, oversold, overbought float64) *RSIOscillator {
	return &RSIOscillator{
		rsi:        indicator.NewRSI(period),
		overbought: overbought,
		oversold:   oversold,
	}
}

func (r *RSIOscillator) Maturity() int { return r.rsi.Maturity() }

func (r *RSIOscillator) Mature() bool { return r.rsi.Mature() }

func (r *RSIOscillator) Update(c candle.Candle) {
	r.rsi.Update(c.Close)
}

func (r *RSIOscillator) Overbought() bool {
	return r.rsi.Value() >= r.overbought
}

func (r *RSIOscillator) Oversold() bool {
	return r.rsi.Value() <= r.oversold
}
