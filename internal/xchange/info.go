// Package xchange models the read-only exchange metadata (fees, lot-size
// filters, margin borrow limits) the simulator needs to price trades. The
// candle store and exchange-info store themselves are external collaborators;
// this package only defines the shapes and the rounding rules applied to them.
package xchange

import "math"

// Fees holds fractional maker/taker rates in [0, 1).
type Fees struct {
	Maker float64
	Taker float64
}

// PriceFilter constrains price precision for a symbol.
type PriceFilter struct {
	Min  float64
	Max  float64
	Step float64
}

// SizeFilter constrains order-size precision for a symbol.
type SizeFilter struct {
	Min  float64
	Max  float64
	Step float64
}

// Filters bundles the lot-size constraints for one symbol.
type Filters struct {
	Price          PriceFilter
	Size           SizeFilter
	BasePrecision  int
	QuotePrecision int
}

// BorrowInfo describes the margin-borrow limits for one base asset.
type BorrowInfo struct {
	DailyInterestRate float64
	Limit             float64
}

// Info is the read-only exchange metadata surface: {fees, filters,
// borrow_info} each keyed by symbol (borrow_info further keyed by asset).
type Info struct {
	Fees       map[string]Fees
	Filters    map[string]Filters
	BorrowInfo map[string]map[string]BorrowInfo
}

// RoundSizeDown rounds a size toward zero to the size filter's step,
// expressed with BasePrecision decimal places.
func (f Filters) RoundSizeDown(size float64) float64 {
	return roundDownStep(size, f.Size.Step, f.BasePrecision)
}

// RoundQuoteDown rounds a quote amount toward zero, at QuotePrecision decimal
// places (used for cost/proceeds computation, which has no explicit step).
func (f Filters) RoundQuoteDown(quote float64) float64 {
	return roundDownPrecision(quote, f.QuotePrecision)
}

// RoundFeeHalfUp rounds a fee half-up at the given number of decimal places.
func RoundFeeHalfUp(fee float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Floor(fee*scale+0.5) / scale
}

func roundDownStep(value, step float64, precision int) float64 {
	if step <= 0 {
		return roundDownPrecision(value, precision)
	}
	units := math.Floor(value / step)
	return roundDownPrecision(units*step, precision)
}

func roundDownPrecision(value float64, precision int) float64 {
	scale := math.Pow10(precision)
	if value >= 0 {
		return math.Floor(value*scale) / scale
	}
	return math.Ceil(value*scale) / scale
}
