package indicator

// DEMA is the double exponential moving average: 2*EMA1 - EMA(EMA1), which
// reduces the lag of a plain EMA. Maturity is the sum of the two EMA
// maturities since the inner EMA only starts receiving ticks once the outer
// one is seeded, mirroring how KAMA/ALMA below compose warm-up windows.
type DEMA struct {
	warmup
	ema1  *EMA
	ema2  *EMA
	value float64
}

// NewDEMA creates a DEMA over the given period.
func NewDEMA(period int) *DEMA {
	ema1 := NewEMA(period)
	ema2 := NewEMA(period)
	return &DEMA{
		warmup: newWarmup(ema1.Maturity() + ema2.Maturity()),
		ema1:   ema1,
		ema2:   ema2,
	}
}

func (d *DEMA) Update(price float64) {
	d.tick()
	d.ema1.Update(price)
	d.ema2.Update(d.ema1.Value())
	d.value = 2*d.ema1.Value() - d.ema2.Value()
}

func (d *DEMA) Value() float64 {
	return d.value
}
