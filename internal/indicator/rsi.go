package indicator

// RSI is the relative strength index: SMMAs of up-moves and down-moves over
// Period, combined as 100 - 100/(1+up/down). Corner cases are explicit: when
// both averages are zero the value is 0; when only the loss average is zero
// the value is 100.
type RSI struct {
	warmup
	period    int
	up        *SMMA
	down      *SMMA
	prevClose float64
	hasPrev   bool
	value     float64
}

// NewRSI creates an RSI over the given period. Maturity is period+1: one
// extra tick is needed to form the first price change.
func NewRSI(period int) *RSI {
	return &RSI{
		warmup: newWarmup(period + 1),
		period: period,
		up:     NewSMMA(period),
		down:   NewSMMA(period),
	}
}

func (r *RSI) Update(price float64) {
	r.tick()
	if !r.hasPrev {
		r.prevClose = price
		r.hasPrev = true
		return
	}
	change := price - r.prevClose
	r.prevClose = price

	upMove, downMove := 0.0, 0.0
	if change > 0 {
		upMove = change
	} else {
		downMove = -change
	}
	r.up.Update(upMove)
	r.down.Update(downMove)

	if !r.up.Mature() || !r.down.Mature() {
		return
	}
	up := r.up.Value()
	down := r.down.Value()
	switch {
	case down == 0 && up == 0:
		r.value = 0
	case down == 0 && up > 0:
		r.value = 100
	default:
		r.value = 100 - 100/(1+up/down)
	}
}

func (r *RSI) Value() float64 {
	return r.value
}
