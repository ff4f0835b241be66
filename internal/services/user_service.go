package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
)

type userService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewUserService(repo repositories.Repository, logger *slog.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Sync(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return NewValidationError("id", "is required", user.ID)
	}
	user.IsActive = true
	if err := s.repo.User().Upsert(ctx, nil, user); err != nil {
		return fmt.Errorf("failed to sync user: %w", err)
	}
	return nil
}
