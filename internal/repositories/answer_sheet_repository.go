package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"gorm.io/gorm"
)

// AnswerSheetRepository interface for answer sheet operations
type AnswerSheetRepository interface {
	// Create fails with ErrDuplicate when the user already has a sheet for
	// the questionnaire.
	Create(ctx context.Context, tx *gorm.DB, sheet *models.AnswerSheet) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AnswerSheet, error)
	// GetByQuestionnaireAndUser returns nil, nil when no sheet exists.
	GetByQuestionnaireAndUser(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (*models.AnswerSheet, error)
	List(ctx context.Context, tx *gorm.DB, order ...Ordering) ([]*models.AnswerSheet, error) // Include user, questionnaire
	Touch(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error

	// Statistics
	GetMaxAnswers(ctx context.Context, tx *gorm.DB) (int, error)
}

// AnswerRepository interface for recorded answers
type AnswerRepository interface {
	// Create fails with ErrDuplicate when the question is already answered
	// on the sheet.
	Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error

	// GetBySheet returns the sheet's answers with question and chosen option
	// preloaded, ordered by the question's order index.
	GetBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) ([]*models.Answer, error)
	CountBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) (int64, error)

	// Validation
	HasAnswer(ctx context.Context, tx *gorm.DB, sheetID, questionID uint) (bool, error)
	GetAnsweredQuestionIDs(ctx context.Context, tx *gorm.DB, sheetID uint) ([]uint, error)
}
