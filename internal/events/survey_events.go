package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	eventSource  = "survey-service"
	eventVersion = "1.0"
)

// EventType represents different types of survey events
type EventType string

const (
	// Answer sheet events
	EventAnswerSheetCreated   EventType = "answer_sheet.created"
	EventAnswerRecorded       EventType = "answer.recorded"
	EventAnswerSheetCompleted EventType = "answer_sheet.completed"

	// Respondent events
	EventSurveyDeclined EventType = "survey.declined"

	// Export events
	EventExportGenerated EventType = "export.generated"
)

// SurveyEvent is the envelope every survey event is published in
type SurveyEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Event payloads

type AnswerSheetCreatedEvent struct {
	AnswerSheetID   uint      `json:"answer_sheet_id"`
	QuestionnaireID uint      `json:"questionnaire_id"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type AnswerRecordedEvent struct {
	AnswerSheetID   uint   `json:"answer_sheet_id"`
	QuestionnaireID uint   `json:"questionnaire_id"`
	UserID          string `json:"user_id"`
	QuestionID      uint   `json:"question_id"`
	ChosenOptionID  uint   `json:"chosen_option_id"`
	Answered        int64  `json:"answered"`
	Total           int64  `json:"total"`
}

type AnswerSheetCompletedEvent struct {
	AnswerSheetID      uint      `json:"answer_sheet_id"`
	QuestionnaireID    uint      `json:"questionnaire_id"`
	QuestionnaireTitle string    `json:"questionnaire_title"`
	UserID             string    `json:"user_id"`
	Score              int       `json:"score"`
	CompletedAt        time.Time `json:"completed_at"`
}

type SurveyDeclinedEvent struct {
	QuestionnaireID uint      `json:"questionnaire_id"`
	UserID          string    `json:"user_id"`
	DeclinedAt      time.Time `json:"declined_at"`
}

type ExportGeneratedEvent struct {
	FileName    string    `json:"file_name"`
	Format      string    `json:"format"`
	SheetCount  int       `json:"sheet_count"`
	MaxAnswers  int       `json:"max_answers"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Event factory functions

func newEvent(eventType EventType, data interface{}) *SurveyEvent {
	return &SurveyEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewAnswerSheetCreatedEvent(sheetID, questionnaireID uint, userID string, createdAt time.Time) *SurveyEvent {
	return newEvent(EventAnswerSheetCreated, AnswerSheetCreatedEvent{
		AnswerSheetID:   sheetID,
		QuestionnaireID: questionnaireID,
		UserID:          userID,
		CreatedAt:       createdAt,
	})
}

func NewAnswerRecordedEvent(sheetID, questionnaireID uint, userID string, questionID, optionID uint, answered, total int64) *SurveyEvent {
	return newEvent(EventAnswerRecorded, AnswerRecordedEvent{
		AnswerSheetID:   sheetID,
		QuestionnaireID: questionnaireID,
		UserID:          userID,
		QuestionID:      questionID,
		ChosenOptionID:  optionID,
		Answered:        answered,
		Total:           total,
	})
}

func NewAnswerSheetCompletedEvent(sheetID, questionnaireID uint, title, userID string, score int, completedAt time.Time) *SurveyEvent {
	return newEvent(EventAnswerSheetCompleted, AnswerSheetCompletedEvent{
		AnswerSheetID:      sheetID,
		QuestionnaireID:    questionnaireID,
		QuestionnaireTitle: title,
		UserID:             userID,
		Score:              score,
		CompletedAt:        completedAt,
	})
}

func NewSurveyDeclinedEvent(questionnaireID uint, userID string, declinedAt time.Time) *SurveyEvent {
	return newEvent(EventSurveyDeclined, SurveyDeclinedEvent{
		QuestionnaireID: questionnaireID,
		UserID:          userID,
		DeclinedAt:      declinedAt,
	})
}

func NewExportGeneratedEvent(fileName, format string, sheetCount, maxAnswers int, generatedAt time.Time) *SurveyEvent {
	return newEvent(EventExportGenerated, ExportGeneratedEvent{
		FileName:    fileName,
		Format:      format,
		SheetCount:  sheetCount,
		MaxAnswers:  maxAnswers,
		GeneratedAt: generatedAt,
	})
}

// GenerateEventID returns a random UUID string
func GenerateEventID() string {
	return uuid.NewString()
}
