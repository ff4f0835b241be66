package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

type AnswerSheetPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewAnswerSheetPostgreSQL(db *gorm.DB) repositories.AnswerSheetRepository {
	return &AnswerSheetPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (a *AnswerSheetPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return a.db
}

func (a *AnswerSheetPostgreSQL) Create(ctx context.Context, tx *gorm.DB, sheet *models.AnswerSheet) error {
	err := a.getDB(tx).WithContext(ctx).Omit("Questionnaire", "User", "Answers").Create(sheet).Error
	return translateError(err, "failed to create answer sheet for questionnaire %d user %s",
		sheet.QuestionnaireID, sheet.UserID)
}

func (a *AnswerSheetPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AnswerSheet, error) {
	var sheet models.AnswerSheet
	if err := a.getDB(tx).WithContext(ctx).First(&sheet, id).Error; err != nil {
		return nil, translateError(err, "failed to get answer sheet %d", id)
	}
	return &sheet, nil
}

func (a *AnswerSheetPostgreSQL) GetByQuestionnaireAndUser(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	var sheet models.AnswerSheet
	err := a.getDB(tx).WithContext(ctx).
		Where("questionnaire_id = ? AND user_id = ?", questionnaireID, userID).
		First(&sheet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "failed to get answer sheet for questionnaire %d user %s", questionnaireID, userID)
	}
	return &sheet, nil
}

func (a *AnswerSheetPostgreSQL) List(ctx context.Context, tx *gorm.DB, order ...repositories.Ordering) ([]*models.AnswerSheet, error) {
	var sheets []*models.AnswerSheet

	query, err := a.helpers.ApplyOrdering(a.getDB(tx).WithContext(ctx).Model(&models.AnswerSheet{}), order...)
	if err != nil {
		return nil, err
	}
	if err := query.Preload("User").Preload("Questionnaire").Find(&sheets).Error; err != nil {
		return nil, translateError(err, "failed to list answer sheets")
	}

	return sheets, nil
}

func (a *AnswerSheetPostgreSQL) Touch(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error {
	err := a.getDB(tx).WithContext(ctx).
		Model(&models.AnswerSheet{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", at).Error
	return translateError(err, "failed to touch answer sheet %d", id)
}

func (a *AnswerSheetPostgreSQL) GetMaxAnswers(ctx context.Context, tx *gorm.DB) (int, error) {
	var maxAnswers int
	err := a.getDB(tx).WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(answer_count), 0) FROM (
			SELECT COUNT(*) AS answer_count FROM answers GROUP BY answer_sheet_id
		) AS sheet_counts`).
		Scan(&maxAnswers).Error
	if err != nil {
		return 0, translateError(err, "failed to get max answers")
	}
	return maxAnswers, nil
}

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

func (a *AnswerPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return a.db
}

func (a *AnswerPostgreSQL) Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error {
	err := a.getDB(tx).WithContext(ctx).Omit("Question", "ChosenOption").Create(answer).Error
	return translateError(err, "failed to create answer for sheet %d question %d",
		answer.AnswerSheetID, answer.QuestionID)
}

func (a *AnswerPostgreSQL) GetBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := a.getDB(tx).WithContext(ctx).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.answer_sheet_id = ?", sheetID).
		Order("questions.question_order ASC").
		Preload("Question").
		Preload("ChosenOption").
		Find(&answers).Error
	if err != nil {
		return nil, translateError(err, "failed to get answers for sheet %d", sheetID)
	}
	return answers, nil
}

func (a *AnswerPostgreSQL) CountBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) (int64, error) {
	var count int64
	err := a.getDB(tx).WithContext(ctx).
		Model(&models.Answer{}).
		Where("answer_sheet_id = ?", sheetID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count answers for sheet %d", sheetID)
	}
	return count, nil
}

func (a *AnswerPostgreSQL) HasAnswer(ctx context.Context, tx *gorm.DB, sheetID, questionID uint) (bool, error) {
	var count int64
	err := a.getDB(tx).WithContext(ctx).
		Model(&models.Answer{}).
		Where("answer_sheet_id = ? AND question_id = ?", sheetID, questionID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "failed to check answer for sheet %d question %d", sheetID, questionID)
	}
	return count > 0, nil
}

func (a *AnswerPostgreSQL) GetAnsweredQuestionIDs(ctx context.Context, tx *gorm.DB, sheetID uint) ([]uint, error) {
	var ids []uint
	err := a.getDB(tx).WithContext(ctx).
		Model(&models.Answer{}).
		Where("answer_sheet_id = ?", sheetID).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, translateError(err, "failed to get answered questions for sheet %d", sheetID)
	}
	return ids, nil
}
