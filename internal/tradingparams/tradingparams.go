package tradingparams

import (
	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
	"github.com/ducminhle1904/crypto-dca-bot/internal/signal"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stop"
)

// TradingParams is the composite chromosome the genetic driver optimizes:
// an entry strategy, a stop-loss side, and a take-profit side, each a
// tagged-variant union resolved at evaluation time by Build.
type TradingParams struct {
	*chromosome.Product
	strategy   *chromosome.Variant
	stopLoss   *chromosome.Variant
	takeProfit *chromosome.Variant
}

// New builds a blank TradingParams chromosome. Generate must be called
// before Build (directly, or via the genetic driver's NewChromosome hook).
func New() *TradingParams {
	strategy := chromosome.NewVariant(strategyFactories())
	stopLoss := chromosome.NewVariant(stopFactories())
	takeProfit := chromosome.NewVariant(stopFactories())
	return &TradingParams{
		Product:    chromosome.NewProduct([]chromosome.Chromosome{strategy, stopLoss, takeProfit}, nil),
		strategy:   strategy,
		stopLoss:   stopLoss,
		takeProfit: takeProfit,
	}
}

// Built is the realized, runnable form of a TradingParams individual.
type Built struct {
	Signal     signal.Signal
	StopLoss   stop.Side
	TakeProfit stop.Side
}

// Build realizes the chromosome's current gene values into concrete
// simulator inputs. Panics if a variant's active gene does not implement
// the expected builder interface, which would indicate a factory list
// mismatch between strategyFactories/stopFactories and these type assertions — a
// programming error, not a runtime condition.
func (t *TradingParams) Build() Built {
	sb, ok := t.strategy.Active().(signalBuilder)
	if !ok {
		panic("tradingparams: active strategy gene does not implement signalBuilder")
	}
	slb, ok := t.stopLoss.Active().(stopBuilder)
	if !ok {
		panic("tradingparams: active stop-loss gene does not implement stopBuilder")
	}
	tpb, ok := t.takeProfit.Active().(stopBuilder)
	if !ok {
		panic("tradingparams: active take-profit gene does not implement stopBuilder")
	}
	return Built{
		Signal:     sb.buildSignal(),
		StopLoss:   slb.buildStop(),
		TakeProfit: tpb.buildStop(),
	}
}
