package repositories

import (
	"context"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository interface for user operations (the identity provider owns user data)
type UserRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	// Upsert inserts the user or refreshes its profile fields, leaving
	// preferences untouched.
	Upsert(ctx context.Context, tx *gorm.DB, user *models.User) error
	UpdatePreferences(ctx context.Context, tx *gorm.DB, id string, preferences datatypes.JSON) error
}
