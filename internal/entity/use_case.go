package entity

import "github.com/dhenenjay/orbital-insights/constants"

// UseCase is one geospatial free-text answer pulled out of the survey
// workbook, for data transfer between layers.
type UseCase struct {
	Respondent int    `json:"user"`   // 1-based row in the survey sheet
	Column     string `json:"column"` // header of the cell it came from
	Text       string `json:"use_case"`
}

// ClassifiedUseCase carries the classifier verdicts for a use case.
type ClassifiedUseCase struct {
	UseCase
	Category     constants.Category     `json:"category"`
	Capabilities []constants.Capability `json:"capabilities,omitempty"`
	Support      constants.SupportLevel `json:"support,omitempty"`
}
