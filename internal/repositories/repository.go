package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repository groups every repository behind one connection.
type Repository interface {
	Questionnaire() QuestionnaireRepository
	Question() QuestionRepository
	Option() OptionRepository
	AnswerSheet() AnswerSheetRepository
	Answer() AnswerRepository
	User() UserRepository

	// WithTransaction runs fn inside a transaction, committing when fn
	// returns nil.
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	AutoMigrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// IsNotFoundError checks if error is a "record not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError checks if error is a unique constraint violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey)
}
