package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/cache"
	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/SAP-F-2025/survey-service/internal/validator"
)

type surveyChoiceService struct {
	repo        repositories.Repository
	progress    ProgressService
	reminders   cache.ReminderStore
	publisher   events.EventPublisher
	validator   *validator.Validator
	reminderTTL time.Duration
	logger      *slog.Logger
	opLogger    *ServiceLogger
}

func NewSurveyChoiceService(
	repo repositories.Repository,
	progress ProgressService,
	reminders cache.ReminderStore,
	publisher events.EventPublisher,
	validator *validator.Validator,
	reminderTTL time.Duration,
	logger *slog.Logger,
) SurveyChoiceService {
	return &surveyChoiceService{
		repo:        repo,
		progress:    progress,
		reminders:   reminders,
		publisher:   publisher,
		validator:   validator,
		reminderTTL: reminderTTL,
		logger:      logger,
		opLogger:    NewServiceLogger(logger, LogConfig{Service: "survey-service", Component: "survey_choice"}),
	}
}

func (s *surveyChoiceService) Get(ctx context.Context, questionnaireID uint) (*QuestionnaireResponse, error) {
	questionnaire, err := getActiveQuestionnaire(ctx, s.repo, questionnaireID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Question().CountByQuestionnaire(ctx, nil, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return newQuestionnaireResponse(questionnaire, total), nil
}

func (s *surveyChoiceService) Choose(ctx context.Context, userID string, req *ChoiceRequest) (resp *ChoiceResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "choose_survey", userID)
	defer func() { op.LogResult(req.QuestionnaireID, "questionnaire", err) }()

	if err = s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err = getActiveQuestionnaire(ctx, s.repo, req.QuestionnaireID); err != nil {
		return nil, err
	}

	resp = &ChoiceResponse{Choice: req.Choice}

	switch req.Choice {
	case models.ChoiceNow:
		resp.Progress, err = s.progress.Progress(ctx, req.QuestionnaireID, userID)
		if err != nil {
			return nil, err
		}

	case models.ChoiceLater:
		if s.reminders == nil {
			return nil, NewBusinessRuleError("reminders_unavailable", "reminders are not configured", nil)
		}
		if err = s.reminders.Snooze(ctx, userID, req.QuestionnaireID, s.reminderTTL); err != nil {
			return nil, fmt.Errorf("failed to store reminder: %w", err)
		}
		remindAfter := time.Now().Add(s.reminderTTL).UTC()
		resp.RemindAfter = &remindAfter

	case models.ChoiceDecline:
		if err = s.decline(ctx, userID, req.QuestionnaireID); err != nil {
			return nil, err
		}
		resp.Declined = true
	}

	return resp, nil
}

// decline opts the user out of every survey, not only this one
func (s *surveyChoiceService) decline(ctx context.Context, userID string, questionnaireID uint) error {
	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	prefs := user.GetPreferences()
	prefs.DeclineSurveys = true
	if err := user.SetPreferences(prefs); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.repo.User().UpdatePreferences(ctx, nil, userID, user.Preferences); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	if s.reminders != nil {
		if err := s.reminders.Clear(ctx, userID); err != nil {
			s.logger.Warn("Failed to clear survey reminders", "user_id", userID, "error", err)
		}
	}

	event := events.NewSurveyDeclinedEvent(questionnaireID, userID, time.Now().UTC())
	publishEvent(ctx, s.publisher, s.logger, event)
	return nil
}
