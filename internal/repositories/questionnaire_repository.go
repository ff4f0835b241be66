package repositories

import (
	"context"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"gorm.io/gorm"
)

// QuestionnaireRepository interface for questionnaire operations
type QuestionnaireRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error)
	GetByIDWithQuestions(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) // Include questions, options
	Update(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error

	// Query operations
	List(ctx context.Context, tx *gorm.DB, filters QuestionnaireFilters) ([]*models.Questionnaire, int64, error)
	GetActive(ctx context.Context, tx *gorm.DB, order Ordering) ([]*models.Questionnaire, error)

	// Status management
	SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error
}

// QuestionRepository interface for question operations
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *models.Question) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Question, error)
	GetByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint, order Ordering) ([]*models.Question, error)
	CountByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint) (int64, error)
}

// OptionRepository interface for answer option operations
type OptionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, option *models.Option) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Option, error)
	GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint, order Ordering) ([]*models.Option, error)
}
