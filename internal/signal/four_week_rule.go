package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/internal/indicator"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// FourWeekRule is the classic Donchian-style breakout: Long on a new
// period-candle high, Short on a new period-candle low, sticky until the
// close crosses back through a trailing moving average (Liquidate). It is
// grounded on the original's four_week_rule.rs, whose name refers to the
// strategy's usual period of 28 daily candles (four weeks).
type FourWeekRule struct {
	ma     indicator.Indicator
	window []float64 // bounded ring buffer of trailing closes, size period
	head   int
	filled int
	period int

	advice filter.Advice
	t, t1  int
}

// NewFourWeekRule builds a FourWeekRule signal over the given lookback
// period, liquidating against ma once the close crosses it.
func NewFourWeekRule(period int, ma indicator.Indicator) *FourWeekRule {
	return &FourWeekRule{
		ma:     ma,
		window: make([]float64, period),
		period: period,
		t1:     period + 1,
	}
}

func (f *FourWeekRule) Maturity() int { return f.t1 }

func (f *FourWeekRule) Mature() bool { return f.t >= f.t1 }

func (f *FourWeekRule) Update(c candle.Candle) {
	if f.t < f.t1 {
		f.t++
	}

	f.ma.Update(c.Close)

	if f.Mature() {
		lowest, highest := f.window[0], f.window[0]
		for i := 1; i < f.filled; i++ {
			v := f.window[i]
			if v < lowest {
				lowest = v
			}
			if v > highest {
				highest = v
			}
		}

		switch {
		case c.Close >= highest:
			f.advice = filter.Long
		case c.Close <= lowest:
			f.advice = filter.Short
		case f.advice == filter.Long && c.Close <= f.ma.Value():
			f.advice = filter.Liquidate
		case f.advice == filter.Short && c.Close >= f.ma.Value():
			f.advice = filter.Liquidate
		}
	}

	f.window[f.head] = c.Close
	f.head = (f.head + 1) % f.period
	if f.filled < f.period {
		f.filled++
	}
}

func (f *FourWeekRule) Advice() filter.Advice {
	return f.advice
}
