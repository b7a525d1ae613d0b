package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/internal/indicator"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// MACrossover emits Long when the fast moving average crosses above the
// slow, Short when it crosses below, and None otherwise. It is grounded on
// the teacher's EMA-period trend indicators (internal/indicators/ema.go).
type MACrossover struct {
	fast, slow indicator.Indicator
	ticks      int
	prevAbove  bool
	hasPrev    bool
	advice     filter.Advice
}

// NewMACrossover builds a crossover signal from two already-constructed
// indicators; fast must have the shorter period.
func NewMACrossover(fast, slow indicator.Indicator) *MACrossover {
	return &MACrossover{fast: fast, slow: slow}
}

func (m *MACrossover) Maturity() int {
	if m.fast.Maturity() > m.slow.Maturity() {
		return m.fast.Maturity()
	}
	return m.slow.Maturity()
}

func (m *MACrossover) Mature() bool {
	return m.ticks >= m.Maturity()
}

func (m *MACrossover) Update(c candle.Candle) {
	m.ticks++
	m.fast.Update(c.Close)
	m.slow.Update(c.Close)

	if !m.fast.Mature() || !m.slow.Mature() {
		m.advice = filter.None
		return
	}

	above := m.fast.Value() > m.slow.Value()
	if !m.hasPrev {
		m.prevAbove = above
		m.hasPrev = true
		m.advice = filter.None
		return
	}
	switch {
	case above && !m.prevAbove:
		m.advice = filter.Long
	case !above && m.prevAbove:
		m.advice = filter.Short
	default:
		m.advice = filter.None
	}
	m.prevAbove = above
}

func (m *MACrossover) Advice() filter.Advice {
	return m.advice
}
