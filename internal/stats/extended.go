package stats

import (
	"fmt"
	"math"

	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/internal/simulate"
)

// Extended is the risk-adjusted statistics set, requiring an aligned
// benchmark price series in addition to the ledger.
type Extended struct {
	AnnualizedReturn float64
	Sharpe           float64
	Sortino          float64
}

// ComposeExtended reconstructs daily portfolio equity from the position
// ledger plus base (and optional quote) price series and derives annualized
// return, Sharpe, and Sortino. basePrices and quotePrices (if non-nil) must
// have length N+1 where N = (end-start)/interval — one extra sample for the
// opening price at start.
func ComposeExtended(summary *simulate.Summary, basePrices, quotePrices []float64, interval int64) (Extended, error) {
	if interval <= 0 {
		return Extended{}, fmt.Errorf("stats: interval must be positive")
	}
	n := int((summary.End - summary.Start) / interval)
	if len(basePrices) != n+1 {
		return Extended{}, fmt.Errorf("stats: basePrices must have length %d, got %d", n+1, len(basePrices))
	}
	if quotePrices != nil && len(quotePrices) != n+1 {
		return Extended{}, fmt.Errorf("stats: quotePrices must have length %d, got %d", n+1, len(quotePrices))
	}

	baseDelta := make([]float64, n+1)
	quoteDelta := make([]float64, n+1)
	startBucket := summary.Start / interval

	bucket := func(t int64) int {
		b := int(t/interval - startBucket)
		if b < 0 {
			b = 0
		}
		if b > n {
			b = n
		}
		return b
	}

	for _, p := range summary.Positions {
		ob := bucket(p.OpenTime)
		cb := bucket(p.CloseTime)
		switch p.Side {
		case position.Long:
			quoteDelta[ob] -= p.OpenQuote
			baseDelta[ob] += p.OpenSize
			quoteDelta[cb] += p.CloseQuote - p.CloseFee
			baseDelta[cb] -= p.CloseSize
		case position.Short:
			baseDelta[ob] -= p.Borrowed
			quoteDelta[ob] += p.ShortOpenProceeds - p.ShortOpenFee
			baseDelta[cb] += p.Borrowed
			quoteDelta[cb] -= p.ShortCloseQuote
		}
	}

	baseHoldings := 0.0
	quoteHoldings := summary.Quote
	equity := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		baseHoldings += baseDelta[i]
		quoteHoldings += quoteDelta[i]
		qp := 1.0
		if quotePrices != nil {
			qp = quotePrices[i]
		}
		equity[i] = baseHoldings*basePrices[i] + quoteHoldings*qp
	}

	if n < 1 {
		return Extended{}, nil
	}

	logReturns := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if equity[i] == 0 {
			continue
		}
		a := equity[i+1]/equity[i] - 1
		logReturns = append(logReturns, math.Log(1+a))
	}
	if len(logReturns) == 0 {
		return Extended{}, nil
	}

	meanG := mean(logReturns)
	annualizedReturn := 365 * meanG

	sd := stddev(logReturns, meanG)
	sharpe := ratio(annualizedReturn, math.Sqrt(365)*sd)

	var negatives []float64
	for _, g := range logReturns {
		if g < 0 {
			negatives = append(negatives, g)
		}
	}
	sortinoSD := stddev(negatives, mean(negatives))
	sortino := ratio(annualizedReturn, math.Sqrt(365)*sortinoSD)

	return Extended{
		AnnualizedReturn: annualizedReturn,
		Sharpe:           sharpe,
		Sortino:          sortino,
	}, nil
}

// ratio defines the Sharpe/Sortino 0-cases: 0 when the numerator is NaN or
// 0, or when the denominator is 0.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 || math.IsNaN(numerator) || numerator == 0 {
		return 0
	}
	r := numerator / denominator
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
