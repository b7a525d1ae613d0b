package xchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters_RoundSizeDown_RoundsToStepAndPrecision(t *testing.T) {
	f := Filters{Size: SizeFilter{Step: 0.01}, BasePrecision: 2}
	assert.InDelta(t, 1.23, f.RoundSizeDown(1.239), 1e-9)
	assert.InDelta(t, 1.20, f.RoundSizeDown(1.2099), 1e-9)
}

func TestFilters_RoundSizeDown_ZeroStep_FallsBackToPrecisionOnly(t *testing.T) {
	f := Filters{BasePrecision: 3}
	assert.InDelta(t, 1.234, f.RoundSizeDown(1.23456), 1e-9)
}

func TestFilters_RoundQuoteDown_TruncatesAtPrecision(t *testing.T) {
	f := Filters{QuotePrecision: 2}
	assert.InDelta(t, 10.99, f.RoundQuoteDown(10.999), 1e-9)
}

func TestRoundFeeHalfUp_RoundsHalfUp(t *testing.T) {
	assert.InDelta(t, 0.13, RoundFeeHalfUp(0.125, 2), 1e-9)
	assert.InDelta(t, 0.12, RoundFeeHalfUp(0.124, 2), 1e-9)
}

func TestRoundDownPrecision_NegativeValue_RoundsTowardZero(t *testing.T) {
	f := Filters{QuotePrecision: 2}
	assert.InDelta(t, -10.99, f.RoundQuoteDown(-10.999), 1e-9)
}
