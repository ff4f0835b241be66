package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
)

// getActiveQuestionnaire loads a questionnaire respondents may interact with
func getActiveQuestionnaire(ctx context.Context, repo repositories.Repository, questionnaireID uint) (*models.Questionnaire, error) {
	questionnaire, err := repo.Questionnaire().GetByID(ctx, nil, questionnaireID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, fmt.Errorf("failed to get questionnaire: %w", err)
	}
	if !questionnaire.Active {
		return nil, ErrQuestionnaireNotActive
	}
	return questionnaire, nil
}

// publishEvent never fails the caller; events are best effort
func publishEvent(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, event *events.SurveyEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishSurveyEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish survey event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
	}
}
