package services

import (
	"time"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
)

// ===== RESPONDENT VIEWS =====

// QuestionnaireResponse is the respondent facing questionnaire
type QuestionnaireResponse struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	IntroductionText  string    `json:"introduction_text"`
	ThankYouText      string    `json:"thank_you_text"`
	CreatedAt         time.Time `json:"created_at"`
	NumberOfQuestions int64     `json:"number_of_questions"`
}

// QuestionResponse hides option correctness from respondents
type QuestionResponse struct {
	ID            uint             `json:"id"`
	QuestionOrder int              `json:"question_order"`
	QuestionText  string           `json:"question_text"`
	Options       []OptionResponse `json:"options"`
}

type OptionResponse struct {
	ID          uint   `json:"id"`
	OptionOrder int    `json:"option_order"`
	OptionText  string `json:"option_text"`
}

type ProgressResponse struct {
	QuestionnaireID uint                       `json:"questionnaire_id"`
	Status          models.QuestionnaireStatus `json:"status"`
	StatusLabel     string                     `json:"status_label"`
	Answered        int64                      `json:"answered"`
	Total           int64                      `json:"total"`
	NextQuestion    *QuestionResponse          `json:"next_question,omitempty"`
	ThankYouText    string                     `json:"thank_you_text,omitempty"`
}

type ScoreResponse struct {
	AnswerSheetID   uint  `json:"answer_sheet_id"`
	QuestionnaireID uint  `json:"questionnaire_id"`
	Score           int   `json:"score"`
	Answered        int64 `json:"answered"`
	Total           int64 `json:"total"`
}

// ===== ANSWER RECORDING =====

type SubmitAnswerRequest struct {
	QuestionnaireID uint `json:"questionnaire_id" validate:"required"`
	QuestionID      uint `json:"question_id" validate:"required"`
	ChosenOptionID  uint `json:"chosen_option_id" validate:"required"`
}

type SubmitAnswerResponse struct {
	AnswerID      uint              `json:"answer_id"`
	AnswerSheetID uint              `json:"answer_sheet_id"`
	Score         int               `json:"score"`
	Progress      *ProgressResponse `json:"progress"`
}

// ===== SURVEY CHOICE =====

type ChoiceRequest struct {
	QuestionnaireID uint                `json:"questionnaire_id" validate:"required"`
	Choice          models.SurveyChoice `json:"choice" validate:"required,survey_choice"`
}

type ChoiceResponse struct {
	Choice      models.SurveyChoice `json:"choice"`
	Progress    *ProgressResponse   `json:"progress,omitempty"`
	RemindAfter *time.Time          `json:"remind_after,omitempty"`
	Declined    bool                `json:"declined,omitempty"`
}

// ===== AUTHORING =====

type CreateQuestionnaireRequest struct {
	Title            string            `json:"title" validate:"required,questionnaire_title"`
	IntroductionText string            `json:"introduction_text" validate:"required"`
	ThankYouText     string            `json:"thank_you_text" validate:"required"`
	Active           bool              `json:"active"`
	Questions        []QuestionRequest `json:"questions" validate:"dive"`
}

type QuestionRequest struct {
	QuestionOrder int             `json:"question_order" validate:"gte=0"`
	QuestionText  string          `json:"question_text" validate:"required,question_text"`
	Options       []OptionRequest `json:"options" validate:"required,min=2,dive"`
}

type OptionRequest struct {
	OptionOrder int    `json:"option_order" validate:"gte=0"`
	OptionText  string `json:"option_text" validate:"required,max=255"`
	IsCorrect   bool   `json:"is_correct"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type QuestionnaireListResponse struct {
	Questionnaires []*models.Questionnaire `json:"questionnaires"`
	Total          int64                   `json:"total"`
	Limit          int                     `json:"limit"`
	Offset         int                     `json:"offset"`
}

// ===== CONVERSIONS =====

func newQuestionnaireResponse(q *models.Questionnaire, numberOfQuestions int64) *QuestionnaireResponse {
	return &QuestionnaireResponse{
		ID:                q.ID,
		Title:             q.Title,
		IntroductionText:  q.IntroductionText,
		ThankYouText:      q.ThankYouText,
		CreatedAt:         q.CreatedAt,
		NumberOfQuestions: numberOfQuestions,
	}
}

func newQuestionResponse(q *models.Question, options []*models.Option) *QuestionResponse {
	resp := &QuestionResponse{
		ID:            q.ID,
		QuestionOrder: q.QuestionOrder,
		QuestionText:  q.QuestionText,
		Options:       make([]OptionResponse, 0, len(options)),
	}
	for _, o := range options {
		resp.Options = append(resp.Options, OptionResponse{
			ID:          o.ID,
			OptionOrder: o.OptionOrder,
			OptionText:  o.OptionText,
		})
	}
	return resp
}

func (r *QuestionRequest) toModel(questionnaireID uint) models.Question {
	question := models.Question{
		QuestionnaireID: questionnaireID,
		QuestionOrder:   r.QuestionOrder,
		QuestionText:    r.QuestionText,
		Options:         make([]models.Option, 0, len(r.Options)),
	}
	for _, o := range r.Options {
		question.Options = append(question.Options, models.Option{
			OptionOrder: o.OptionOrder,
			OptionText:  o.OptionText,
			IsCorrect:   o.IsCorrect,
		})
	}
	return question
}

// ListFilters is the query accepted by QuestionnaireService.List
type ListFilters = repositories.QuestionnaireFilters
