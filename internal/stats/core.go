// Package stats converts a position ledger, plus an aligned benchmark price
// series for ExtendedStatistics, into portfolio performance and
// risk-adjusted ratios.
package stats

import (
	"math"
	"sort"

	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/internal/simulate"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/xtime"
)

// Core is the ledger-only statistics set: profit, drawdowns, counts.
type Core struct {
	Start    int64
	End      int64
	Duration int64

	Cost          float64
	Gain          float64
	Profit        float64
	ROI           float64
	AnnualizedROI float64

	TotalPositions    int
	PositionsInProfit int
	PositionsInLoss   int
	ByCloseReason     map[position.CloseReason]int

	MeanProfit        float64
	MeanDuration       float64
	MaxDrawdown        float64
	MeanDrawdown       float64
	ReturnOverMaxDrawdown float64
}

// ComposeCore reduces a trading summary into Core statistics.
func ComposeCore(summary *simulate.Summary) Core {
	c := Core{
		Start:         summary.Start,
		End:           summary.End,
		Duration:      summary.End - summary.Start,
		Cost:          summary.Quote,
		ByCloseReason: map[position.CloseReason]int{},
	}

	var profitSum, durationSum float64
	for _, p := range summary.Positions {
		profit := p.Profit()
		c.Profit += profit
		profitSum += profit
		durationSum += float64(p.Duration())
		c.TotalPositions++
		c.ByCloseReason[p.CloseReason]++
		if profit > 0 {
			c.PositionsInProfit++
		} else if profit < 0 {
			c.PositionsInLoss++
		}
	}

	c.Gain = c.Cost + c.Profit
	if c.Cost != 0 {
		c.ROI = c.Profit / c.Cost
	}
	if c.Duration > 0 {
		c.AnnualizedROI = math.Pow(1+c.ROI, float64(xtime.YearMs)/float64(c.Duration)) - 1
	}
	if c.TotalPositions > 0 {
		c.MeanProfit = profitSum / float64(c.TotalPositions)
		c.MeanDuration = durationSum / float64(c.TotalPositions)
	}

	maxDD, meanDD := drawdowns(summary)
	c.MaxDrawdown = maxDD
	c.MeanDrawdown = meanDD
	if c.MaxDrawdown != 0 {
		c.ReturnOverMaxDrawdown = c.ROI / c.MaxDrawdown
	}

	return c
}

// drawdowns walks the running equity curve implied by closing positions in
// order and returns (max drawdown, mean drawdown) as fractions of the
// running peak.
func drawdowns(summary *simulate.Summary) (float64, float64) {
	if len(summary.Positions) == 0 {
		return 0, 0
	}
	positions := make([]position.Position, len(summary.Positions))
	copy(positions, summary.Positions)
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].CloseTime < positions[j].CloseTime
	})

	equity := summary.Quote
	peak := equity
	var ddSum float64
	var ddCount int
	maxDD := 0.0

	for _, p := range positions {
		equity += p.Profit()
		if equity > peak {
			peak = equity
		}
		if peak <= 0 {
			continue
		}
		dd := (peak - equity) / peak
		if dd > 0 {
			ddSum += dd
			ddCount++
		}
		if dd > maxDD {
			maxDD = dd
		}
	}

	meanDD := 0.0
	if ddCount > 0 {
		meanDD = ddSum / float64(ddCount)
	}
	return maxDD, meanDD
}
