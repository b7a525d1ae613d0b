package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/xtime"
)

// WriteLedgerCSV writes one symbol's closed-position ledger to a CSV file,
// generalizing the teacher's pkg/reporting/csv.go beyond DCA cycles to the
// Position ledger.
func WriteLedgerCSV(positions []position.Position, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("report: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	var totalProfit float64
	for _, p := range positions {
		totalProfit += p.Profit()
		row := []string{
			p.Side.String(),
			xtime.FormatTimestamp(p.OpenTime),
			xtime.FormatTimestamp(p.CloseTime),
			p.CloseReason.String(),
			fmt.Sprintf("%.8f", p.EntryPrice),
			fmt.Sprintf("%.8f", p.Cost()),
			fmt.Sprintf("%.8f", p.Gain()),
			fmt.Sprintf("%.8f", p.Profit()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	summary := make([]string, len(ledgerHeader))
	summary[len(summary)-1] = fmt.Sprintf("SUMMARY: total_profit=%.8f positions=%d", totalProfit, len(positions))
	return w.Write(summary)
}
