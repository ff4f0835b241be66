package services

import (
	"context"
	"io"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/export"
	"github.com/SAP-F-2025/survey-service/internal/models"
)

// ProgressService resolves where a user stands in a questionnaire
type ProgressService interface {
	// Status is PENDING without a sheet, INCOMPLETE while questions remain
	// unanswered and COMPLETED once every question has an answer. The
	// question total is counted on every call.
	Status(ctx context.Context, questionnaireID uint, userID string) (models.QuestionnaireStatus, error)
	SheetStatus(ctx context.Context, sheet *models.AnswerSheet) (models.QuestionnaireStatus, error)
	// NextQuestion returns the lowest ordered unanswered question, or nil
	// when every question is answered.
	NextQuestion(ctx context.Context, questionnaireID uint, userID string) (*models.Question, error)
	Progress(ctx context.Context, questionnaireID uint, userID string) (*ProgressResponse, error)
}

type ScoringService interface {
	Score(ctx context.Context, sheetID uint) (int, error)
	ScoreForUser(ctx context.Context, questionnaireID uint, userID string) (*ScoreResponse, error)
}

type AvailabilityService interface {
	// NextAvailable returns the newest active questionnaire the user has not
	// completed, or nil.
	NextAvailable(ctx context.Context, userID string) (*models.Questionnaire, error)
	// CheckForQuestionnaire is NextAvailable honouring declined surveys and
	// "remind me later" choices.
	CheckForQuestionnaire(ctx context.Context, userID string) (*models.Questionnaire, error)
}

type ExportService interface {
	BuildRows(ctx context.Context) (*export.Table, error)
	ExportFileName(now time.Time) string
	Export(ctx context.Context, w io.Writer, format models.ExportFormat) (*models.ExportSummary, error)
	ExportToFile(ctx context.Context, now time.Time) (*models.ExportSummary, error)
}

type AnswerService interface {
	// StartSheet fails with ErrDuplicateAttempt when the user already has a sheet
	StartSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error)
	EnsureSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error)
	SubmitAnswer(ctx context.Context, userID string, req *SubmitAnswerRequest) (*SubmitAnswerResponse, error)
}

type SurveyChoiceService interface {
	Get(ctx context.Context, questionnaireID uint) (*QuestionnaireResponse, error)
	Choose(ctx context.Context, userID string, req *ChoiceRequest) (*ChoiceResponse, error)
}

type QuestionnaireService interface {
	Create(ctx context.Context, creatorID string, req *CreateQuestionnaireRequest) (*models.Questionnaire, error)
	AddQuestion(ctx context.Context, questionnaireID uint, req *QuestionRequest) (*models.Question, error)
	SetActive(ctx context.Context, id uint, active bool) error
	List(ctx context.Context, filters ListFilters) (*QuestionnaireListResponse, error)
	GetByID(ctx context.Context, id uint) (*models.Questionnaire, error)
	NumberOfQuestions(ctx context.Context, id uint) (int64, error)
}

type UserService interface {
	// Sync records the identity provider's view of the user
	Sync(ctx context.Context, user *models.User) error
}
