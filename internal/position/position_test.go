package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLong_CostGainProfit_WorkedExample(t *testing.T) {
	// quote=1.0, size=1.0 (entryPrice=1.0), fee=0.001, close price=2.0.
	p := Position{
		Side:       Long,
		EntryPrice: 1.0,
		OpenQuote:  1.0,
		OpenSize:   1.0,
		OpenFee:    0.001,
		CloseSize:  0.999,
		CloseQuote: 1.998,
		CloseFee:   0.001998,
	}
	assert.InDelta(t, 1.0, p.Cost(), 1e-9)
	assert.InDelta(t, 1.996002, p.Gain(), 1e-9)
	assert.InDelta(t, 0.996002, p.Profit(), 1e-9)
}

func TestLong_Loss(t *testing.T) {
	p := Position{
		Side:       Long,
		OpenQuote:  1.0,
		CloseQuote: 0.5,
		CloseFee:   0.0005,
	}
	assert.InDelta(t, 1.0, p.Cost(), 1e-9)
	assert.Less(t, p.Profit(), 0.0)
}

func TestShort_CostGainProfit_ProfitsOnPriceDrop(t *testing.T) {
	p := Position{
		Side:              Short,
		EntryPrice:        1.0,
		Collateral:        1.0,
		ShortOpenProceeds: 1.0,
		ShortOpenFee:      0.001,
		ShortCloseQuote:   0.5,
	}
	assert.InDelta(t, 1.0, p.Cost(), 1e-9)
	assert.InDelta(t, 1.499, p.Gain(), 1e-9)
	assert.InDelta(t, 0.499, p.Profit(), 1e-9)
}

func TestShort_LosesOnPriceRise(t *testing.T) {
	p := Position{
		Side:              Short,
		EntryPrice:        1.0,
		Collateral:        1.0,
		ShortOpenProceeds: 1.0,
		ShortOpenFee:      0.001,
		ShortCloseQuote:   1.5,
	}
	assert.Less(t, p.Profit(), 0.0)
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "Long", Long.String())
	assert.Equal(t, "Short", Short.String())
}

func TestCloseReason_String(t *testing.T) {
	assert.Equal(t, "Strategy", Strategy.String())
	assert.Equal(t, "Cancelled", Cancelled.String())
	assert.Equal(t, "StopLoss", StopLoss.String())
	assert.Equal(t, "TakeProfit", TakeProfit.String())
}

func TestPosition_Duration(t *testing.T) {
	p := Position{OpenTime: 1000, CloseTime: 2500}
	assert.Equal(t, int64(1500), p.Duration())
}
