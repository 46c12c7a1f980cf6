package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

// ExportXLSX returns an XLSX workbook (as bytes) with one row per classified
// use case, for sharing the analysis outside the toolchain.
func (s *Service) ExportXLSX(res *Result) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Use Cases"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"User",
		"Source Column",
		"Category",
		"Capabilities",
		"Support Level",
		"Use Case",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeCase := func(c entity.ClassifiedUseCase) {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		caps := make([]string, len(c.Capabilities))
		for i, cp := range c.Capabilities {
			caps[i] = string(cp)
		}

		write(1, c.Respondent)
		write(2, c.Column)
		write(3, string(c.Category))
		write(4, strings.Join(caps, ", "))
		write(5, string(c.Support))
		write(6, clip(c.Text, 300))
		row++
	}

	for _, cat := range constants.Categories() {
		for _, c := range res.Summary.Buckets[cat] {
			writeCase(c)
		}
	}
	for _, c := range res.Summary.Uncategorized {
		writeCase(c)
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "B", "B", 30) // source column
	_ = f.SetColWidth(sheet, "C", "C", 24) // category
	_ = f.SetColWidth(sheet, "D", "D", 40) // capabilities
	_ = f.SetColWidth(sheet, "E", "E", 22) // support
	_ = f.SetColWidth(sheet, "F", "F", 80) // text

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("analysis.xlsx.ok",
		"source_path", res.SourcePath,
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
