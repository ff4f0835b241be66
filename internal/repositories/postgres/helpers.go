package postgres

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

// SharedHelpers holds query fragments reused across repositories.
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

// ApplyOrdering appends ORDER BY clauses in the given sequence.
func (h *SharedHelpers) ApplyOrdering(query *gorm.DB, orders ...repositories.Ordering) (*gorm.DB, error) {
	for _, o := range orders {
		clause, err := o.Clause()
		if err != nil {
			return nil, err
		}
		query = query.Order(clause)
	}
	return query, nil
}

// ApplyPagination applies limit and offset when set.
func (h *SharedHelpers) ApplyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

// ApplyQuestionnaireFilters applies common filters to a questionnaire query
func (h *SharedHelpers) ApplyQuestionnaireFilters(query *gorm.DB, filters repositories.QuestionnaireFilters) *gorm.DB {
	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}
	if filters.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filters.Search+"%")
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

// translateError maps gorm errors onto the repository sentinels.
func translateError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", msg, repositories.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", msg, repositories.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
