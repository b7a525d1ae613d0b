package indicator

import "math"

// ALMA is the Arnaud Legoux moving average: a Gaussian-weighted window with
// offset 0.85 and sigma floor(period/1.5).
type ALMA struct {
	warmup
	period  int
	window  []float64
	pos     int
	filled  bool
	weights []float64
	value   float64
}

// NewALMA creates an ALMA indicator over the given period.
func NewALMA(period int) *ALMA {
	const offset = 0.85
	sigma := math.Floor(float64(period) / 1.5)
	if sigma == 0 {
		sigma = 1
	}
	m := offset * float64(period-1)
	s := float64(period) / sigma

	weights := make([]float64, period)
	sum := 0.0
	for i := 0; i < period; i++ {
		diff := float64(i) - m
		w := math.Exp(-(diff * diff) / (2 * s * s))
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}

	return &ALMA{
		warmup:  newWarmup(period),
		period:  period,
		window:  make([]float64, period),
		weights: weights,
	}
}

func (a *ALMA) Update(price float64) {
	a.tick()
	a.window[a.pos] = price
	a.pos = (a.pos + 1) % a.period
	if a.pos == 0 {
		a.filled = true
	}
	if !a.filled {
		return
	}
	sum := 0.0
	// window[pos] is the oldest sample (about to be overwritten next tick);
	// weights[0] corresponds to the oldest sample in chronological order.
	idx := a.pos
	for i := 0; i < a.period; i++ {
		sum += a.weights[i] * a.window[idx]
		idx = (idx + 1) % a.period
	}
	a.value = sum
}

func (a *ALMA) Value() float64 {
	return a.value
}
