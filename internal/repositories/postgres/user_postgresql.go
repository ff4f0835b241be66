package postgres

import (
	"context"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

func (u *UserPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return u.db
}

func (u *UserPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := u.getDB(tx).WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateError(err, "failed to get user %s", id)
	}
	return &user, nil
}

func (u *UserPostgreSQL) Upsert(ctx context.Context, tx *gorm.DB, user *models.User) error {
	err := u.getDB(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "full_name", "email", "updated_at"}),
		}).
		Create(user).Error
	return translateError(err, "failed to upsert user %s", user.ID)
}

func (u *UserPostgreSQL) UpdatePreferences(ctx context.Context, tx *gorm.DB, id string, preferences datatypes.JSON) error {
	result := u.getDB(tx).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("preferences", preferences)
	if result.Error != nil {
		return translateError(result.Error, "failed to update preferences for user %s", id)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "failed to update preferences for user %s", id)
	}
	return nil
}
