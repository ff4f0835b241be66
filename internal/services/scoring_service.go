package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
)

type scoringService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewScoringService(repo repositories.Repository, logger *slog.Logger) ScoringService {
	return &scoringService{
		repo:   repo,
		logger: logger,
	}
}

// CalculateScore counts answers whose chosen option is marked correct.
// Chosen options must be preloaded.
func CalculateScore(answers []*models.Answer) int {
	score := 0
	for _, answer := range answers {
		if answer.IsCorrect() {
			score++
		}
	}
	return score
}

// Score is recomputed from the sheet's answers on every call
func (s *scoringService) Score(ctx context.Context, sheetID uint) (int, error) {
	if _, err := s.repo.AnswerSheet().GetByID(ctx, nil, sheetID); err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrAnswerSheetNotFound
		}
		return 0, fmt.Errorf("failed to get answer sheet: %w", err)
	}

	answers, err := s.repo.Answer().GetBySheet(ctx, nil, sheetID)
	if err != nil {
		return 0, fmt.Errorf("failed to get answers: %w", err)
	}

	return CalculateScore(answers), nil
}

func (s *scoringService) ScoreForUser(ctx context.Context, questionnaireID uint, userID string) (*ScoreResponse, error) {
	sheet, err := s.repo.AnswerSheet().GetByQuestionnaireAndUser(ctx, nil, questionnaireID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answer sheet: %w", err)
	}
	if sheet == nil {
		return nil, ErrAnswerSheetNotFound
	}

	answers, err := s.repo.Answer().GetBySheet(ctx, nil, sheet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	total, err := s.repo.Question().CountByQuestionnaire(ctx, nil, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &ScoreResponse{
		AnswerSheetID:   sheet.ID,
		QuestionnaireID: questionnaireID,
		Score:           CalculateScore(answers),
		Answered:        int64(len(answers)),
		Total:           total,
	}, nil
}
