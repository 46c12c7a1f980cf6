package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRun records one pass over a survey workbook.
type AnalysisRun struct {
	ID            uuid.UUID `json:"id"`
	SourcePath    string    `json:"source_path"`
	Responses     int       `json:"responses"`
	UseCases      int       `json:"use_cases"`
	Uncategorized int       `json:"uncategorized"`
	TestCases     int       `json:"test_cases"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}
