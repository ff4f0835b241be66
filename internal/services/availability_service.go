package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/cache"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
)

type availabilityService struct {
	repo      repositories.Repository
	progress  ProgressService
	reminders cache.ReminderStore
	logger    *slog.Logger
}

// NewAvailabilityService builds the selector. reminders may be nil when no
// cache is configured, in which case snoozes are not honoured.
func NewAvailabilityService(repo repositories.Repository, progress ProgressService, reminders cache.ReminderStore, logger *slog.Logger) AvailabilityService {
	return &availabilityService{
		repo:      repo,
		progress:  progress,
		reminders: reminders,
		logger:    logger,
	}
}

func (s *availabilityService) NextAvailable(ctx context.Context, userID string) (*models.Questionnaire, error) {
	return s.firstOpen(ctx, userID, nil)
}

func (s *availabilityService) CheckForQuestionnaire(ctx context.Context, userID string) (*models.Questionnaire, error) {
	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil && user.GetPreferences().DeclineSurveys {
		s.logger.Debug("User declined surveys", "user_id", userID)
		return nil, nil
	}

	return s.firstOpen(ctx, userID, s.isSnoozed)
}

// firstOpen scans active questionnaires newest first and returns the first
// one not completed by the user and not rejected by skip.
func (s *availabilityService) firstOpen(ctx context.Context, userID string, skip func(context.Context, string, uint) bool) (*models.Questionnaire, error) {
	questionnaires, err := s.repo.Questionnaire().GetActive(ctx, nil, repositories.ByRecency)
	if err != nil {
		return nil, fmt.Errorf("failed to get active questionnaires: %w", err)
	}

	for _, questionnaire := range questionnaires {
		status, err := s.progress.Status(ctx, questionnaire.ID, userID)
		if err != nil {
			return nil, err
		}
		if status == models.StatusCompleted {
			continue
		}
		if skip != nil && skip(ctx, userID, questionnaire.ID) {
			continue
		}
		return questionnaire, nil
	}

	return nil, nil
}

// isSnoozed treats cache failures as "not snoozed"; a reminder is not worth
// hiding a survey over.
func (s *availabilityService) isSnoozed(ctx context.Context, userID string, questionnaireID uint) bool {
	if s.reminders == nil {
		return false
	}
	snoozed, err := s.reminders.IsSnoozed(ctx, userID, questionnaireID)
	if err != nil {
		s.logger.Warn("Failed to read survey reminder", "user_id", userID, "questionnaire_id", questionnaireID, "error", err)
		return false
	}
	return snoozed
}
