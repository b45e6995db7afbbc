// Package export writes assessments to a spreadsheet workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"risk-demo/internal/domain"
)

const (
	// FileName is the fixed name of the exported workbook.
	FileName = "risk_degerlendirmeleri.xlsx"
	// SheetName is the name of the single sheet in the workbook.
	SheetName = "Risk Değerlendirmeleri"
	// ContentType is the MIME type of the exported workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns are the header cells, one per exported record attribute.
var Columns = []string{
	"department",
	"risk",
	"valueChainStep",
	"probability",
	"frequency",
	"severity",
	"riskScore",
	"financialImpact",
	"date",
}

// ErrEmpty is returned when there is nothing to export.
var ErrEmpty = domain.ErrValidation(domain.MsgNothingToExport)

// WriteWorkbook writes a workbook with a header row followed by one row per
// record. An empty record list writes nothing and returns ErrEmpty.
func WriteWorkbook(w io.Writer, records []domain.Assessment) error {
	if len(records) == 0 {
		return ErrEmpty
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, a := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			a.Department,
			a.Risk,
			a.ValueChainStep,
			a.Probability,
			a.Frequency,
			a.Severity,
			a.RiskScore,
			a.FinancialImpact,
			a.DateString(),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
