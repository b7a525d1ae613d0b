package indicator

// Stoch is the stochastic oscillator: a rolling high/low window of size
// KPeriod feeds fast %K, which is smoothed by an SMA of KSMAPeriod into %K,
// itself smoothed by an SMA of DSMAPeriod into %D. Maturity is the sum of the
// three lags minus two (each smoothing stage needs its own warm-up, but the
// first sample of each stage is available the instant the prior stage
// produces its first value).
type Stoch struct {
	warmup
	kPeriod int
	highs   []float64
	lows    []float64
	pos     int
	filled  bool
	count   int

	kSMA *SMA
	dSMA *SMA

	fastK float64
	k     float64
	d     float64
}

// NewStoch creates a Stoch indicator with the given rolling-window and
// smoothing periods.
func NewStoch(kPeriod, kSMAPeriod, dSMAPeriod int) *Stoch {
	return &Stoch{
		warmup:  newWarmup(kPeriod + kSMAPeriod + dSMAPeriod - 2),
		kPeriod: kPeriod,
		highs:   make([]float64, kPeriod),
		lows:    make([]float64, kPeriod),
		kSMA:    NewSMA(kSMAPeriod),
		dSMA:    NewSMA(dSMAPeriod),
	}
}

func (s *Stoch) UpdateHLC(high, low, close float64) {
	s.tick()
	s.highs[s.pos] = high
	s.lows[s.pos] = low
	s.pos = (s.pos + 1) % s.kPeriod
	if s.count < s.kPeriod {
		s.count++
	}
	if s.count < s.kPeriod {
		return
	}

	maxHigh, minLow := s.highs[0], s.lows[0]
	for i := 1; i < s.kPeriod; i++ {
		if s.highs[i] > maxHigh {
			maxHigh = s.highs[i]
		}
		if s.lows[i] < minLow {
			minLow = s.lows[i]
		}
	}
	if maxHigh == minLow {
		s.fastK = 0
	} else {
		s.fastK = 100 * (close - minLow) / (maxHigh - minLow)
	}

	s.kSMA.Update(s.fastK)
	if !s.kSMA.Mature() {
		return
	}
	s.k = s.kSMA.Value()

	s.dSMA.Update(s.k)
	if !s.dSMA.Mature() {
		return
	}
	s.d = s.dSMA.Value()
}

// FastK returns the raw %K before smoothing.
func (s *Stoch) FastK() float64 { return s.fastK }

// K returns the smoothed %K line.
func (s *Stoch) K() float64 { return s.k }

// D returns the %D signal line.
func (s *Stoch) D() float64 { return s.d }
