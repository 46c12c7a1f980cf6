package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhenenjay/orbital-insights/constants"
)

// ExportJob records a composite export submitted to the imagery service.
// The service owns execution; we only keep the descriptor and the returned
// operation name.
type ExportJob struct {
	ID             uuid.UUID           `json:"id"`
	Description    string              `json:"description"`
	Collection     string              `json:"collection"`
	StartDate      string              `json:"start_date"` // YYYY-MM-DD
	EndDate        string              `json:"end_date"`   // YYYY-MM-DD
	Folder         string              `json:"folder"`
	FilenamePrefix string              `json:"filename_prefix"`
	OperationName  string              `json:"operation_name,omitempty"` // remote job id
	Status         constants.JobStatus `json:"status"`
	ErrorMessage   string              `json:"error_message,omitempty"`
	SubmittedAt    time.Time           `json:"submitted_at"`
}
