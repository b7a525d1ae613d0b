// Package report renders an optimization run's results at the CLI
// boundary: a go-pretty hall-of-fame table and excelize/CSV ledger exports,
// generalizing the teacher's pkg/reporting tables and workbook writer
// beyond single-symbol DCA cycles to the generic position ledger.
package report

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/crypto-dca-bot/internal/genetic"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stats"
	"github.com/ducminhle1904/crypto-dca-bot/internal/tradingparams"
)

// EliteRow is one hall-of-fame entry rendered as a table row: the
// individual's fitness plus its per-symbol core statistics.
type EliteRow struct {
	Rank    int
	Fitness float64
	Symbol  string
	Core    stats.Core
}

// PrintHallOfFame renders the final generation's elite individuals as a
// rounded-style table to stdout, mirroring the teacher's
// printStartupInfo/printBotConfiguration table style.
func PrintHallOfFame(generations []genetic.Generation[*tradingparams.TradingParams], rows []EliteRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("HALL OF FAME (generation %d)", lastGenerationIndex(generations)))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Rank", "Fitness", "Symbol", "Profit", "ROI", "Max DD", "Positions"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Rank,
			fmt.Sprintf("%.6f", r.Fitness),
			r.Symbol,
			fmt.Sprintf("%.2f", r.Core.Profit),
			fmt.Sprintf("%.2f%%", r.Core.ROI*100),
			fmt.Sprintf("%.2f%%", r.Core.MaxDrawdown*100),
			r.Core.TotalPositions,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// PrintGenerationProgress renders one line per generation with its best
// fitness, mirroring the teacher's cmd/backtest genetic_algorithm.go
// progress reporting.
func PrintGenerationProgress(generations []genetic.Generation[*tradingparams.TradingParams]) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("GENERATION PROGRESS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Generation", "Best Fitness", "Elite Count"})

	for _, g := range generations {
		best := genetic.MinFitness
		if len(g.Elite) > 0 {
			best = g.Elite[0].Fitness
		}
		t.AppendRow(table.Row{g.Index, fmt.Sprintf("%.6f", best), len(g.Elite)})
	}

	t.Render()
	fmt.Println()
}

// PrintSingleRun renders one chromosome's core statistics, for the
// single-configuration cmd/backtest counterpart to PrintHallOfFame.
func PrintSingleRun(symbol string, seed int64, core stats.Core) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("BACKTEST %s (seed %d)", symbol, seed))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Profit", "ROI", "Max DD", "Positions", "In Profit", "In Loss"})
	t.AppendRow(table.Row{
		fmt.Sprintf("%.2f", core.Profit),
		fmt.Sprintf("%.2f%%", core.ROI*100),
		fmt.Sprintf("%.2f%%", core.MaxDrawdown*100),
		core.TotalPositions,
		core.PositionsInProfit,
		core.PositionsInLoss,
	})

	t.Render()
	fmt.Println()
}

func lastGenerationIndex(generations []genetic.Generation[*tradingparams.TradingParams]) int {
	if len(generations) == 0 {
		return 0
	}
	return generations[len(generations)-1].Index
}
