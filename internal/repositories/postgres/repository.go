package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

// Repository is the gorm backed repositories.Repository.
type Repository struct {
	db            *gorm.DB
	questionnaire repositories.QuestionnaireRepository
	question      repositories.QuestionRepository
	option        repositories.OptionRepository
	answerSheet   repositories.AnswerSheetRepository
	answer        repositories.AnswerRepository
	user          repositories.UserRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:            db,
		questionnaire: NewQuestionnairePostgreSQL(db),
		question:      NewQuestionPostgreSQL(db),
		option:        NewOptionPostgreSQL(db),
		answerSheet:   NewAnswerSheetPostgreSQL(db),
		answer:        NewAnswerPostgreSQL(db),
		user:          NewUserPostgreSQL(db),
	}
}

func (r *Repository) Questionnaire() repositories.QuestionnaireRepository { return r.questionnaire }
func (r *Repository) Question() repositories.QuestionRepository           { return r.question }
func (r *Repository) Option() repositories.OptionRepository               { return r.option }
func (r *Repository) AnswerSheet() repositories.AnswerSheetRepository     { return r.answerSheet }
func (r *Repository) Answer() repositories.AnswerRepository               { return r.answer }
func (r *Repository) User() repositories.UserRepository                   { return r.user }

func (r *Repository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *Repository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Questionnaire{},
		&models.Question{},
		&models.Option{},
		&models.AnswerSheet{},
		&models.Answer{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
