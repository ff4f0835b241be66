package models

import "time"

// ExportFormat is the serialization used for answer sheet exports.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportSummary describes one finished export run.
type ExportSummary struct {
	FileName       string        `json:"file_name"`
	Format         ExportFormat  `json:"format"`
	SheetCount     int           `json:"sheet_count"`
	MaxAnswers     int           `json:"max_answers"`
	GeneratedAt    time.Time     `json:"generated_at"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// SurveyChoice is the answer to the "take this survey?" prompt.
type SurveyChoice string

const (
	ChoiceNow     SurveyChoice = "now"
	ChoiceLater   SurveyChoice = "later"
	ChoiceDecline SurveyChoice = "decline"
)

func (c SurveyChoice) IsValid() bool {
	switch c {
	case ChoiceNow, ChoiceLater, ChoiceDecline:
		return true
	}
	return false
}

func (f ExportFormat) IsValid() bool {
	return f == ExportCSV || f == ExportXLSX
}
