// Package survey loads survey-response workbooks and pulls out the free-text
// answers that describe geospatial use cases.
package survey

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

// keyColumnHints flag the headers most likely to hold use-case answers.
// They drive the report only; extraction scans every column.
var keyColumnHints = []string{"use case", "application", "build", "project"}

// Workbook is one loaded survey sheet: a header row plus body rows aligned to it.
type Workbook struct {
	Path    string
	Sheet   string
	Headers []string
	Rows    [][]string
}

// Stats aggregates one extraction pass.
type Stats struct {
	Rows      int
	Cells     int
	UseCases  int
	ElapsedMS int64
}

// Load reads the workbook at path. If sheet is empty the first sheet is used.
// Every row is read into memory up front, matching the single-pass pipeline
// the analyzer runs.
func Load(path, sheet string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("survey.workbook.close_error", "path", path, "error", cerr)
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := rows[0]
	body := rows[1:]

	// GetRows drops trailing empty cells; pad body rows so every row aligns
	// with the header.
	for i, r := range body {
		if len(r) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, r)
			body[i] = padded
		}
	}

	logger.Info("survey.workbook.loaded",
		"path", path,
		"sheet", sheet,
		"columns", len(headers),
		"responses", len(body),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &Workbook{Path: path, Sheet: sheet, Headers: headers, Rows: body}, nil
}

// KeyColumns returns the headers whose names suggest use-case answers.
func (w *Workbook) KeyColumns() []string {
	var out []string
	for _, h := range w.Headers {
		lower := strings.ToLower(h)
		for _, hint := range keyColumnHints {
			if strings.Contains(lower, hint) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// UseCases extracts every cell that reads like a geospatial use case: longer
// than minTextLen and containing at least one geospatial keyword. Short,
// empty, or off-topic cells are skipped, never faulted on.
func (w *Workbook) UseCases(minTextLen int) ([]entity.UseCase, Stats) {
	start := time.Now()
	var stats Stats
	var out []entity.UseCase

	for i, row := range w.Rows {
		stats.Rows++
		for c, cell := range row {
			if cell == "" || c >= len(w.Headers) {
				continue
			}
			stats.Cells++
			if len(cell) <= minTextLen {
				continue
			}
			if !containsAny(strings.ToLower(cell), constants.GeospatialKeywords) {
				continue
			}
			out = append(out, entity.UseCase{
				Respondent: i + 1,
				Column:     w.Headers[c],
				Text:       cell,
			})
		}
	}

	stats.UseCases = len(out)
	stats.ElapsedMS = time.Since(start).Milliseconds()
	return out, stats
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
