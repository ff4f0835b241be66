package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/SAP-F-2025/survey-service/internal/validator"
	"gorm.io/gorm"
)

type answerService struct {
	repo      repositories.Repository
	progress  ProgressService
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *slog.Logger
	opLogger  *ServiceLogger
	now       func() time.Time
}

func NewAnswerService(repo repositories.Repository, progress ProgressService, publisher events.EventPublisher, validator *validator.Validator, logger *slog.Logger) AnswerService {
	return &answerService{
		repo:      repo,
		progress:  progress,
		publisher: publisher,
		validator: validator,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "survey-service", Component: "answers"}),
		now:       time.Now,
	}
}

func (s *answerService) StartSheet(ctx context.Context, questionnaireID uint, userID string) (sheet *models.AnswerSheet, err error) {
	op := s.opLogger.WithOperation(ctx, "start_answer_sheet", userID)
	defer func() { op.LogResult(questionnaireID, "questionnaire", err) }()

	if _, err = getActiveQuestionnaire(ctx, s.repo, questionnaireID); err != nil {
		return nil, err
	}
	return s.createSheet(ctx, questionnaireID, userID)
}

// EnsureSheet returns the user's sheet, creating it on first use. Losing a
// creation race to a concurrent request is resolved by reading the winner.
func (s *answerService) EnsureSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	sheet, err := s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, nil, questionnaireID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answer sheet: %w", err)
	}
	if sheet != nil {
		return sheet, nil
	}

	sheet, err = s.createSheet(ctx, questionnaireID, userID)
	if err == nil {
		return sheet, nil
	}
	if !errors.Is(err, ErrDuplicateAttempt) {
		return nil, err
	}

	s.logger.Info("Answer sheet created concurrently, re-fetching",
		"questionnaire_id", questionnaireID, "user_id", userID)

	sheet, err = s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, nil, questionnaireID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch answer sheet: %w", err)
	}
	if sheet == nil {
		return nil, ErrAnswerSheetNotFound
	}
	return sheet, nil
}

func (s *answerService) createSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	sheet := &models.AnswerSheet{
		QuestionnaireID: questionnaireID,
		UserID:          userID,
	}
	if err := s.repo.AnswerSheet().Create(ctx, nil, sheet); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: questionnaire %d user %s", ErrDuplicateAttempt, questionnaireID, userID)
		}
		return nil, fmt.Errorf("failed to create answer sheet: %w", err)
	}

	publishEvent(ctx, s.publisher, s.logger, events.NewAnswerSheetCreatedEvent(sheet.ID, questionnaireID, userID, sheet.CreatedAt))
	return sheet, nil
}

func (s *answerService) SubmitAnswer(ctx context.Context, userID string, req *SubmitAnswerRequest) (resp *SubmitAnswerResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "submit_answer", userID)
	defer func() { op.LogResult(req.QuestionnaireID, "questionnaire", err) }()

	if err = s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	questionnaire, err := getActiveQuestionnaire(ctx, s.repo, req.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if err = s.checkMembership(ctx, req); err != nil {
		return nil, err
	}

	sheet, err := s.EnsureSheet(ctx, req.QuestionnaireID, userID)
	if err != nil {
		return nil, err
	}

	answer := &models.Answer{
		AnswerSheetID:  sheet.ID,
		QuestionID:     req.QuestionID,
		ChosenOptionID: req.ChosenOptionID,
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		answered, err := s.repo.Answer().HasAnswer(ctx, tx, sheet.ID, req.QuestionID)
		if err != nil {
			return fmt.Errorf("failed to check existing answer: %w", err)
		}
		if answered {
			return ErrQuestionAlreadyAnswered
		}

		if err := s.repo.Answer().Create(ctx, tx, answer); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrQuestionAlreadyAnswered
			}
			return fmt.Errorf("failed to record answer: %w", err)
		}

		if err := s.repo.AnswerSheet().Touch(ctx, tx, sheet.ID, s.now()); err != nil {
			return fmt.Errorf("failed to update answer sheet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	progress, err := s.progress.Progress(ctx, req.QuestionnaireID, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.Answer().GetBySheet(ctx, nil, sheet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	score := CalculateScore(answers)

	publishEvent(ctx, s.publisher, s.logger, events.NewAnswerRecordedEvent(sheet.ID, req.QuestionnaireID, userID,
		req.QuestionID, req.ChosenOptionID, progress.Answered, progress.Total))
	if progress.Status == models.StatusCompleted {
		publishEvent(ctx, s.publisher, s.logger, events.NewAnswerSheetCompletedEvent(sheet.ID, req.QuestionnaireID,
			questionnaire.Title, userID, score, s.now().UTC()))
	}

	return &SubmitAnswerResponse{
		AnswerID:      answer.ID,
		AnswerSheetID: sheet.ID,
		Score:         score,
		Progress:      progress,
	}, nil
}

// checkMembership verifies the question belongs to the questionnaire and the
// option to the question.
func (s *answerService) checkMembership(ctx context.Context, req *SubmitAnswerRequest) error {
	question, err := s.repo.Question().GetByID(ctx, nil, req.QuestionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to get question: %w", err)
	}
	if question.QuestionnaireID != req.QuestionnaireID {
		return ErrQuestionMismatch
	}

	option, err := s.repo.Option().GetByID(ctx, nil, req.ChosenOptionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrOptionNotFound
		}
		return fmt.Errorf("failed to get option: %w", err)
	}
	if option.QuestionID != question.ID {
		return ErrOptionMismatch
	}
	return nil
}
