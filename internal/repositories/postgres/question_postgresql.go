package postgres

import (
	"context"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (q *QuestionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return q.db
}

func (q *QuestionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, question *models.Question) error {
	err := q.getDB(tx).WithContext(ctx).Omit("Options").Create(question).Error
	return translateError(err, "failed to create question")
}

func (q *QuestionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Question, error) {
	var question models.Question
	if err := q.getDB(tx).WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translateError(err, "failed to get question %d", id)
	}
	return &question, nil
}

func (q *QuestionPostgreSQL) GetByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint, order repositories.Ordering) ([]*models.Question, error) {
	var questions []*models.Question

	query, err := q.helpers.ApplyOrdering(
		q.getDB(tx).WithContext(ctx).Where("questionnaire_id = ?", questionnaireID), order)
	if err != nil {
		return nil, err
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, translateError(err, "failed to get questions for questionnaire %d", questionnaireID)
	}

	return questions, nil
}

func (q *QuestionPostgreSQL) CountByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint) (int64, error) {
	var count int64
	err := q.getDB(tx).WithContext(ctx).
		Model(&models.Question{}).
		Where("questionnaire_id = ?", questionnaireID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count questions for questionnaire %d", questionnaireID)
	}
	return count, nil
}

type OptionPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewOptionPostgreSQL(db *gorm.DB) repositories.OptionRepository {
	return &OptionPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (o *OptionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return o.db
}

func (o *OptionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, option *models.Option) error {
	err := o.getDB(tx).WithContext(ctx).Create(option).Error
	return translateError(err, "failed to create option")
}

func (o *OptionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Option, error) {
	var option models.Option
	if err := o.getDB(tx).WithContext(ctx).First(&option, id).Error; err != nil {
		return nil, translateError(err, "failed to get option %d", id)
	}
	return &option, nil
}

func (o *OptionPostgreSQL) GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint, order repositories.Ordering) ([]*models.Option, error) {
	var options []*models.Option

	query, err := o.helpers.ApplyOrdering(
		o.getDB(tx).WithContext(ctx).Where("question_id = ?", questionID), order)
	if err != nil {
		return nil, err
	}
	if err := query.Find(&options).Error; err != nil {
		return nil, translateError(err, "failed to get options for question %d", questionID)
	}

	return options, nil
}
