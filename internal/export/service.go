// Package export assembles batch records into a column-aligned table and a
// downloadable XLSX workbook.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Flea-03/proyecto-contratos/internal/fields"
	"github.com/Flea-03/proyecto-contratos/internal/pipeline"
)

// IdentifierColumn is the first report column, holding the document name.
const IdentifierColumn = "Archivo"

// DefaultSheetName is the single sheet the workbook carries.
const DefaultSheetName = "Resultados"

// DefaultFileName is the suggested name for the downloaded workbook.
const DefaultFileName = "resultados_contratos.xlsx"

// Service renders batch records as XLSX bytes.
type Service struct {
	sheet  string
	logger *slog.Logger
}

func NewService(sheet string, logger *slog.Logger) *Service {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sheet: sheet, logger: logger}
}

// Header returns the report columns: the identifier column followed by the
// field keys in table-declaration order.
func Header() []string {
	return append([]string{IdentifierColumn}, fields.Keys()...)
}

// BuildTable renders records as rows under Header(), one row per record, in
// record order. Meant for external display of the report.
func BuildTable(records []pipeline.Record) [][]string {
	keys := fields.Keys()
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, 0, len(keys)+1)
		row = append(row, r.Archivo)
		for _, key := range keys {
			row = append(row, r.Fields[key])
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildWorkbook returns a single-sheet XLSX workbook holding the report table.
func (s *Service) BuildWorkbook(records []pipeline.Record) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", s.sheet); err != nil {
		return nil, err
	}

	for i, h := range Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(s.sheet, cell, h)
	}
	for ri, row := range BuildTable(records) {
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			_ = f.SetCellValue(s.sheet, cell, v)
		}
	}

	// Widen the identifier and the long free-text columns
	_ = f.SetColWidth(s.sheet, "A", "A", 36)
	_ = f.SetColWidth(s.sheet, "B", "J", 22)
	_ = f.SetColWidth(s.sheet, "K", "M", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
