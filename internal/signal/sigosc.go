package signal

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// SigOsc additionally gates a Sig-style composite by an oscillator. Both the
// inner signal and the oscillator must be mature before any advice is
// emitted; until then SigOsc reports None.
//
// Gating rule (preserved exactly as specified, not "fixed"): Long is emitted
// only when the oscillator reports Oversold, and — this is the documented
// quirk — Short is ALSO gated on Oversold rather than Overbought. Any advice
// that fails its gate is downgraded to Liquidate rather than suppressed to
// None, so a disagreement between signal and oscillator actively closes an
// open position instead of merely declining to open one.
type SigOsc struct {
	base   Signal
	osc    Oscillator
	ticks  int
	advice filter.Advice
}

// NewSigOsc composes a base signal with an oscillator gate.
func NewSigOsc(base Signal, osc Oscillator) *SigOsc {
	return &SigOsc{base: base, osc: osc}
}

func (s *SigOsc) Maturity() int {
	if s.base.Maturity() > s.osc.Maturity() {
		return s.base.Maturity()
	}
	return s.osc.Maturity()
}

func (s *SigOsc) Mature() bool {
	return s.base.Mature() && s.osc.Mature()
}

func (s *SigOsc) Update(c candle.Candle) {
	s.ticks++
	s.base.Update(c)
	s.osc.Update(c)

	if !s.Mature() {
		s.advice = filter.None
		return
	}

	raw := s.base.Advice()
	switch raw {
	case filter.Long:
		if s.osc.Oversold() {
			s.advice = filter.Long
		} else {
			s.advice = filter.Liquidate
		}
	case filter.Short:
		if s.osc.Oversold() {
			s.advice = filter.Short
		} else {
			s.advice = filter.Liquidate
		}
	default:
		s.advice = raw
	}
}

func (s *SigOsc) Advice() filter.Advice {
	return s.advice
}
