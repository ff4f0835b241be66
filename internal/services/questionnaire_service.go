package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/SAP-F-2025/survey-service/internal/validator"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type questionnaireService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
	opLogger  *ServiceLogger
}

func NewQuestionnaireService(repo repositories.Repository, validator *validator.Validator, logger *slog.Logger) QuestionnaireService {
	return &questionnaireService{
		repo:      repo,
		validator: validator,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "survey-service", Component: "questionnaires"}),
	}
}

// ===== CORE CRUD OPERATIONS =====

// Create stores the questionnaire with its questions and options in one
// transaction. New questions need at least two options and one correct one.
func (s *questionnaireService) Create(ctx context.Context, creatorID string, req *CreateQuestionnaireRequest) (questionnaire *models.Questionnaire, err error) {
	op := s.opLogger.WithOperation(ctx, "create_questionnaire", creatorID)
	defer func() {
		var id uint
		if questionnaire != nil {
			id = questionnaire.ID
		}
		op.LogResult(id, "questionnaire", err)
	}()

	if err = s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	questions := make([]models.Question, len(req.Questions))
	for i := range req.Questions {
		questions[i] = req.Questions[i].toModel(0)
	}
	if errs := s.validator.Question().ValidateBatch(questions); len(errs) > 0 {
		return nil, errs
	}

	created := &models.Questionnaire{
		Title:            req.Title,
		IntroductionText: req.IntroductionText,
		ThankYouText:     req.ThankYouText,
		Active:           req.Active,
		CreatedBy:        creatorID,
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Questionnaire().Create(ctx, tx, created); err != nil {
			return fmt.Errorf("failed to create questionnaire: %w", err)
		}
		for i := range questions {
			if err := s.createQuestion(ctx, tx, created.ID, &questions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Questionnaire created", "questionnaire_id", created.ID, "questions", len(questions))

	return s.GetByID(ctx, created.ID)
}

func (s *questionnaireService) AddQuestion(ctx context.Context, questionnaireID uint, req *QuestionRequest) (question *models.Question, err error) {
	op := s.opLogger.WithOperation(ctx, "add_question", "")
	defer func() { op.LogResult(questionnaireID, "questionnaire", err) }()

	if err = s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err = s.repo.Questionnaire().GetByID(ctx, nil, questionnaireID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, fmt.Errorf("failed to get questionnaire: %w", err)
	}

	existing, err := s.repo.Question().GetByQuestionnaire(ctx, nil, questionnaireID, repositories.ByQuestionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	existingOrders := make([]int, len(existing))
	for i, q := range existing {
		existingOrders[i] = q.QuestionOrder
	}

	model := req.toModel(questionnaireID)
	if errs := s.validator.Question().ValidateBatch([]models.Question{model}, existingOrders...); len(errs) > 0 {
		return nil, errs
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.createQuestion(ctx, tx, questionnaireID, &model)
	})
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func (s *questionnaireService) createQuestion(ctx context.Context, tx *gorm.DB, questionnaireID uint, question *models.Question) error {
	question.QuestionnaireID = questionnaireID
	if err := s.repo.Question().Create(ctx, tx, question); err != nil {
		if repositories.IsDuplicateError(err) {
			return fmt.Errorf("%w: order %d", ErrQuestionDuplicateOrder, question.QuestionOrder)
		}
		return fmt.Errorf("failed to create question: %w", err)
	}

	for i := range question.Options {
		question.Options[i].QuestionID = question.ID
		if err := s.repo.Option().Create(ctx, tx, &question.Options[i]); err != nil {
			return fmt.Errorf("failed to create option: %w", err)
		}
	}
	return nil
}

func (s *questionnaireService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.repo.Questionnaire().SetActive(ctx, nil, id, active); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionnaireNotFound
		}
		return fmt.Errorf("failed to update questionnaire: %w", err)
	}

	s.logger.Info("Questionnaire visibility changed", "questionnaire_id", id, "active", active)
	return nil
}

func (s *questionnaireService) List(ctx context.Context, filters ListFilters) (*QuestionnaireListResponse, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if _, err := filters.Ordering().Clause(); err != nil {
		return nil, NewValidationError("sort_by", err.Error(), filters.SortBy)
	}

	questionnaires, total, err := s.repo.Questionnaire().List(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list questionnaires: %w", err)
	}

	return &QuestionnaireListResponse{
		Questionnaires: questionnaires,
		Total:          total,
		Limit:          filters.Limit,
		Offset:         filters.Offset,
	}, nil
}

// GetByID returns the questionnaire with questions and options in order,
// correctness flags included.
func (s *questionnaireService) GetByID(ctx context.Context, id uint) (*models.Questionnaire, error) {
	questionnaire, err := s.repo.Questionnaire().GetByIDWithQuestions(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, fmt.Errorf("failed to get questionnaire: %w", err)
	}
	return questionnaire, nil
}

func (s *questionnaireService) NumberOfQuestions(ctx context.Context, id uint) (int64, error) {
	if _, err := s.repo.Questionnaire().GetByID(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrQuestionnaireNotFound
		}
		return 0, fmt.Errorf("failed to get questionnaire: %w", err)
	}
	return s.repo.Question().CountByQuestionnaire(ctx, nil, id)
}
