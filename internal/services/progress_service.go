package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

type progressService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewProgressService(repo repositories.Repository, logger *slog.Logger) ProgressService {
	return &progressService{
		repo:   repo,
		logger: logger,
	}
}

func (s *progressService) Status(ctx context.Context, questionnaireID uint, userID string) (models.QuestionnaireStatus, error) {
	return s.status(ctx, nil, questionnaireID, userID)
}

func (s *progressService) SheetStatus(ctx context.Context, sheet *models.AnswerSheet) (models.QuestionnaireStatus, error) {
	total, err := s.repo.Question().CountByQuestionnaire(ctx, nil, sheet.QuestionnaireID)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	status, _, err := s.resolve(ctx, nil, sheet, total)
	return status, err
}

func (s *progressService) NextQuestion(ctx context.Context, questionnaireID uint, userID string) (*models.Question, error) {
	return s.nextQuestion(ctx, nil, questionnaireID, userID)
}

// Progress reads status and next question in one transaction so both see
// the same set of answers.
func (s *progressService) Progress(ctx context.Context, questionnaireID uint, userID string) (*ProgressResponse, error) {
	var resp *ProgressResponse

	err := s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		questionnaire, err := s.repo.Questionnaire().GetByID(ctx, tx, questionnaireID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrQuestionnaireNotFound
			}
			return fmt.Errorf("failed to get questionnaire: %w", err)
		}

		total, err := s.repo.Question().CountByQuestionnaire(ctx, tx, questionnaireID)
		if err != nil {
			return fmt.Errorf("failed to count questions: %w", err)
		}

		sheet, err := s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, tx, questionnaireID, userID)
		if err != nil {
			return fmt.Errorf("failed to get answer sheet: %w", err)
		}

		status, answered, err := s.resolve(ctx, tx, sheet, total)
		if err != nil {
			return err
		}

		resp = &ProgressResponse{
			QuestionnaireID: questionnaireID,
			Status:          status,
			StatusLabel:     status.Label(),
			Answered:        answered,
			Total:           total,
		}

		if status == models.StatusCompleted {
			resp.ThankYouText = questionnaire.ThankYouText
			return nil
		}

		next, err := s.nextQuestion(ctx, tx, questionnaireID, userID)
		if err != nil || next == nil {
			return err
		}

		options, err := s.repo.Option().GetByQuestion(ctx, tx, next.ID, repositories.ByOptionOrder)
		if err != nil {
			return fmt.Errorf("failed to get options: %w", err)
		}
		resp.NextQuestion = newQuestionResponse(next, options)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *progressService) status(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (models.QuestionnaireStatus, error) {
	total, err := s.repo.Question().CountByQuestionnaire(ctx, tx, questionnaireID)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}

	sheet, err := s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, tx, questionnaireID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get answer sheet: %w", err)
	}

	status, _, err := s.resolve(ctx, tx, sheet, total)
	return status, err
}

// resolve applies the status rule to a possibly nil sheet. A questionnaire
// without questions is complete for everyone.
func (s *progressService) resolve(ctx context.Context, tx *gorm.DB, sheet *models.AnswerSheet, total int64) (models.QuestionnaireStatus, int64, error) {
	if total == 0 {
		return models.StatusCompleted, 0, nil
	}
	if sheet == nil {
		return models.StatusPending, 0, nil
	}

	answered, err := s.repo.Answer().CountBySheet(ctx, tx, sheet.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count answers: %w", err)
	}

	if answered >= total {
		return models.StatusCompleted, answered, nil
	}
	return models.StatusIncomplete, answered, nil
}

func (s *progressService) nextQuestion(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (*models.Question, error) {
	questions, err := s.repo.Question().GetByQuestionnaire(ctx, tx, questionnaireID, repositories.ByQuestionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, nil
	}

	sheet, err := s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, tx, questionnaireID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answer sheet: %w", err)
	}
	if sheet == nil {
		return questions[0], nil
	}

	answeredIDs, err := s.repo.Answer().GetAnsweredQuestionIDs(ctx, tx, sheet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answered questions: %w", err)
	}
	if len(answeredIDs) == 0 {
		return questions[0], nil
	}

	answered := make(map[uint]bool, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = true
	}
	for _, question := range questions {
		if !answered[question.ID] {
			return question, nil
		}
	}

	return nil, nil
}
