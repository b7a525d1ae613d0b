package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/xtime"
)

// WriteLedgerXLSX exports one sheet per symbol, each listing every closed
// position, generalizing the teacher's pkg/reporting/excel.go multi-sheet
// workbook beyond DCA cycles to the Position ledger.
func WriteLedgerXLSX(ledgers map[string][]position.Position, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("report: create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("report: create header style: %w", err)
	}

	first := true
	for symbol, positions := range ledgers {
		sheet := symbol
		if first {
			fx.SetSheetName(fx.GetSheetName(0), sheet)
			first = false
		} else if _, err := fx.NewSheet(sheet); err != nil {
			return fmt.Errorf("report: create sheet %s: %w", sheet, err)
		}
		if err := writeLedgerSheet(fx, sheet, positions, headerStyle); err != nil {
			return fmt.Errorf("report: write sheet %s: %w", sheet, err)
		}
	}

	return fx.SaveAs(path)
}

var ledgerHeader = []string{
	"Side", "OpenTime", "CloseTime", "CloseReason", "EntryPrice", "Cost", "Gain", "Profit",
}

func writeLedgerSheet(fx *excelize.File, sheet string, positions []position.Position, headerStyle int) error {
	for col, h := range ledgerHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := fx.SetCellStyle(sheet, "A1", fmt.Sprintf("%c1", 'A'+len(ledgerHeader)-1), headerStyle); err != nil {
		return err
	}

	for i, p := range positions {
		row := i + 2
		values := []interface{}{
			p.Side.String(),
			xtime.FormatTimestamp(p.OpenTime),
			xtime.FormatTimestamp(p.CloseTime),
			p.CloseReason.String(),
			p.EntryPrice,
			p.Cost(),
			p.Gain(),
			p.Profit(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
