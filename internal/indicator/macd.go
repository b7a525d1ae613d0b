package indicator

// MACD is the difference of a fast and a slow EMA, plus a signal EMA of that
// difference.
//
// Maturity is defined here as long.Maturity() + signal.Maturity(): the
// signal line is itself an EMA fed by the MACD line, and the MACD line
// cannot produce its first defined value before the slow EMA has. The
// alternative definition seen elsewhere (longPeriod - 1) undercounts the
// signal EMA's own warm-up; this implementation's test scenarios assume the
// additive definition.
type MACD struct {
	warmup
	fast   *EMA
	slow   *EMA
	signal *EMA
	macd   float64
	hist   float64
}

// NewMACD creates a MACD indicator from fast/slow/signal periods.
func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	fast := NewEMA(fastPeriod)
	slow := NewEMA(slowPeriod)
	signal := NewEMA(signalPeriod)
	return &MACD{
		warmup: newWarmup(slow.Maturity() + signal.Maturity()),
		fast:   fast,
		slow:   slow,
		signal: signal,
	}
}

func (m *MACD) Update(price float64) {
	m.tick()
	m.fast.Update(price)
	m.slow.Update(price)
	if !m.slow.Mature() {
		return
	}
	m.macd = m.fast.Value() - m.slow.Value()
	m.signal.Update(m.macd)
	m.hist = m.macd - m.signal.Value()
}

// Value returns the MACD line (fast EMA - slow EMA).
func (m *MACD) Value() float64 {
	return m.macd
}

// Signal returns the signal line (EMA of the MACD line).
func (m *MACD) Signal() float64 {
	return m.signal.Value()
}

// Histogram returns MACD - Signal.
func (m *MACD) Histogram() float64 {
	return m.hist
}
