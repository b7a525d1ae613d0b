package filter

// Persistence requires K+1 consecutive identical non-None advices before
// emitting that advice; otherwise it emits None.
type Persistence struct {
	k       int
	streak  int
	current Advice
	ticks   int
}

// NewPersistence creates a Persistence filter requiring k+1 consecutive
// identical non-None advices.
func NewPersistence(k int) *Persistence {
	return &Persistence{k: k}
}

// Maturity is k+1 samples.
func (p *Persistence) Maturity() int {
	return p.k + 1
}

func (p *Persistence) Mature() bool {
	return p.ticks >= p.Maturity()
}

// Update pushes one advice and returns the emitted (possibly None) advice.
func (p *Persistence) Update(advice Advice) Advice {
	p.ticks++

	if advice == None {
		p.streak = 0
		p.current = None
		return None
	}
	if advice == p.current {
		p.streak++
	} else {
		p.current = advice
		p.streak = 1
	}
	if p.streak >= p.k+1 {
		return p.current
	}
	return None
}
