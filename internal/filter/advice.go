// Package filter implements the policy layer that sits between a raw signal
// and the simulator: MidTrend (warm-up suppression), Persistence (debounce),
// and Changed (transition-only emission), plus the Advice combination rule
// they all share.
package filter

// Advice is the strategy's recommended direction for the next candle.
type Advice int

const (
	None Advice = iota
	Long
	Short
	Liquidate
)

func (a Advice) String() string {
	switch a {
	case Long:
		return "Long"
	case Short:
		return "Short"
	case Liquidate:
		return "Liquidate"
	default:
		return "None"
	}
}

// Combine merges two advices: None dominates to None; equal non-None
// advices pass through unchanged; anything else resolves to Liquidate.
func Combine(a, b Advice) Advice {
	if a == None || b == None {
		return None
	}
	if a == b {
		return a
	}
	return Liquidate
}
