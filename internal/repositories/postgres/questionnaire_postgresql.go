package postgres

import (
	"context"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionnairePostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewQuestionnairePostgreSQL(db *gorm.DB) repositories.QuestionnaireRepository {
	return &QuestionnairePostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (q *QuestionnairePostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return q.db
}

func (q *QuestionnairePostgreSQL) Create(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error {
	err := q.getDB(tx).WithContext(ctx).Omit("Questions", "Creator").Create(questionnaire).Error
	return translateError(err, "failed to create questionnaire")
}

func (q *QuestionnairePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	if err := q.getDB(tx).WithContext(ctx).First(&questionnaire, id).Error; err != nil {
		return nil, translateError(err, "failed to get questionnaire %d", id)
	}
	return &questionnaire, nil
}

func (q *QuestionnairePostgreSQL) GetByIDWithQuestions(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := q.getDB(tx).WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		First(&questionnaire, id).Error
	if err != nil {
		return nil, translateError(err, "failed to get questionnaire %d with questions", id)
	}
	return &questionnaire, nil
}

func (q *QuestionnairePostgreSQL) Update(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error {
	err := q.getDB(tx).WithContext(ctx).Omit("Questions", "Creator").Save(questionnaire).Error
	return translateError(err, "failed to update questionnaire %d", questionnaire.ID)
}

func (q *QuestionnairePostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.QuestionnaireFilters) ([]*models.Questionnaire, int64, error) {
	var questionnaires []*models.Questionnaire
	var total int64

	// apply filter first
	query := q.getDB(tx).WithContext(ctx).Model(&models.Questionnaire{})
	query = q.helpers.ApplyQuestionnaireFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "failed to count questionnaires")
	}

	// then apply pagination and sorting
	query, err := q.helpers.ApplyOrdering(query, filters.Ordering())
	if err != nil {
		return nil, 0, err
	}
	query = q.helpers.ApplyPagination(query, filters.Limit, filters.Offset)

	if err := query.Find(&questionnaires).Error; err != nil {
		return nil, 0, translateError(err, "failed to list questionnaires")
	}

	return questionnaires, total, nil
}

func (q *QuestionnairePostgreSQL) GetActive(ctx context.Context, tx *gorm.DB, order repositories.Ordering) ([]*models.Questionnaire, error) {
	var questionnaires []*models.Questionnaire

	query, err := q.helpers.ApplyOrdering(q.getDB(tx).WithContext(ctx).Where("active = ?", true), order)
	if err != nil {
		return nil, err
	}
	if err := query.Find(&questionnaires).Error; err != nil {
		return nil, translateError(err, "failed to get active questionnaires")
	}

	return questionnaires, nil
}

func (q *QuestionnairePostgreSQL) SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error {
	result := q.getDB(tx).WithContext(ctx).
		Model(&models.Questionnaire{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return translateError(result.Error, "failed to update questionnaire %d", id)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "failed to update questionnaire %d", id)
	}
	return nil
}
