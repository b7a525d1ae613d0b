// Package position models a single open-or-closed trading position: a
// tagged Long/Short variant with margin bookkeeping for shorts.
package position

// Side is the direction of a position.
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	if s == Short {
		return "Short"
	}
	return "Long"
}

// CloseReason explains why a position was closed.
type CloseReason int

const (
	Strategy CloseReason = iota
	Cancelled
	StopLoss
	TakeProfit
)

func (r CloseReason) String() string {
	switch r {
	case Cancelled:
		return "Cancelled"
	case StopLoss:
		return "StopLoss"
	case TakeProfit:
		return "TakeProfit"
	default:
		return "Strategy"
	}
}

// Position is a closed (or still-open) position. Long and Short fields are
// both present on the struct but only the ones relevant to Side are
// populated; this mirrors a tagged union without requiring a type switch at
// every call site, at the cost of a few always-zero fields on the other
// variant.
type Position struct {
	Side        Side
	OpenTime    int64
	CloseTime   int64
	CloseReason CloseReason
	EntryPrice  float64

	// Long fields. OpenFee is base-denominated (it reduces the size sold at
	// close, per spec §4.5); CloseFee is quote-denominated.
	OpenQuote  float64
	OpenSize   float64
	OpenFee    float64
	CloseSize  float64
	CloseQuote float64
	CloseFee   float64

	// Short (margin) fields. Collateral and Borrowed are base-denominated;
	// OpenProceeds/OpenFee/CloseQuote are quote-denominated. Cost basis for a
	// short is taken as Collateral priced at EntryPrice — an Open Question
	// the spec leaves unresolved for shorts (see DESIGN.md).
	Collateral     float64
	Borrowed       float64
	ShortOpenProceeds float64
	ShortOpenFee      float64
	ShortCloseQuote   float64
	Interest          float64
}

// Cost is the quote-denominated amount committed to opening the position.
func (p Position) Cost() float64 {
	if p.Side == Long {
		return p.OpenQuote
	}
	return p.Collateral * p.EntryPrice
}

// Gain is the quote-denominated amount recovered when the position closed.
func (p Position) Gain() float64 {
	if p.Side == Long {
		return p.CloseQuote - p.CloseFee
	}
	return p.Cost() + (p.ShortOpenProceeds - p.ShortOpenFee) - p.ShortCloseQuote
}

// Profit is Gain - Cost.
func (p Position) Profit() float64 {
	return p.Gain() - p.Cost()
}

// Duration is CloseTime - OpenTime, in milliseconds.
func (p Position) Duration() int64 {
	return p.CloseTime - p.OpenTime
}
