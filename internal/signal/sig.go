package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// Sig wraps a base Signal and feeds its advice through MidTrend and
// Persistence in parallel; the combined result (filter.Combine) is the
// emitted advice. Maturity is S.Maturity() + max(MidTrend, Persistence) - 1.
type Sig struct {
	base        Signal
	midTrend    *filter.MidTrend
	persistence *filter.Persistence
	maturity    int
	ticks       int
	advice      filter.Advice
}

// NewSig composes a base signal with a MidTrend policy and a Persistence
// debounce length.
func NewSig(base Signal, midTrendPolicy filter.MidTrendPolicy, persistenceK int) *Sig {
	mt := filter.NewMidTrend(midTrendPolicy)
	p := filter.NewPersistence(persistenceK)
	policyMaturity := mt.Maturity()
	if p.Maturity() > policyMaturity {
		policyMaturity = p.Maturity()
	}
	return &Sig{
		base:        base,
		midTrend:    mt,
		persistence: p,
		maturity:    base.Maturity() + policyMaturity - 1,
	}
}

func (s *Sig) Maturity() int { return s.maturity }

func (s *Sig) Mature() bool { return s.ticks >= s.maturity }

func (s *Sig) Update(c candle.Candle) {
	s.ticks++
	s.base.Update(c)
	raw := filter.None
	if s.base.Mature() {
		raw = s.base.Advice()
	}
	mtOut := s.midTrend.Update(raw)
	pOut := s.persistence.Update(raw)
	s.advice = filter.Combine(mtOut, pOut)
}

func (s *Sig) Advice() filter.Advice {
	return s.advice
}
