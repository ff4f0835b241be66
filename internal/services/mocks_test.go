package services

import (
	"context"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MockQuestionnaireRepository is a mock implementation of QuestionnaireRepository
type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) Create(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error {
	args := m.Called(ctx, tx, questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	args := m.Called(ctx, tx, id)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireRepository) GetByIDWithQuestions(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	args := m.Called(ctx, tx, id)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireRepository) Update(ctx context.Context, tx *gorm.DB, questionnaire *models.Questionnaire) error {
	args := m.Called(ctx, tx, questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.QuestionnaireFilters) ([]*models.Questionnaire, int64, error) {
	args := m.Called(ctx, tx, filters)
	list, _ := args.Get(0).([]*models.Questionnaire)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionnaireRepository) GetActive(ctx context.Context, tx *gorm.DB, order repositories.Ordering) ([]*models.Questionnaire, error) {
	args := m.Called(ctx, tx, order)
	list, _ := args.Get(0).([]*models.Questionnaire)
	return list, args.Error(1)
}

func (m *MockQuestionnaireRepository) SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error {
	args := m.Called(ctx, tx, id, active)
	return args.Error(0)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *models.Question) error {
	args := m.Called(ctx, tx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Question, error) {
	args := m.Called(ctx, tx, id)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func (m *MockQuestionRepository) GetByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint, order repositories.Ordering) ([]*models.Question, error) {
	args := m.Called(ctx, tx, questionnaireID, order)
	list, _ := args.Get(0).([]*models.Question)
	return list, args.Error(1)
}

func (m *MockQuestionRepository) CountByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint) (int64, error) {
	args := m.Called(ctx, tx, questionnaireID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOptionRepository is a mock implementation of OptionRepository
type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) Create(ctx context.Context, tx *gorm.DB, option *models.Option) error {
	args := m.Called(ctx, tx, option)
	return args.Error(0)
}

func (m *MockOptionRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Option, error) {
	args := m.Called(ctx, tx, id)
	o, _ := args.Get(0).(*models.Option)
	return o, args.Error(1)
}

func (m *MockOptionRepository) GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint, order repositories.Ordering) ([]*models.Option, error) {
	args := m.Called(ctx, tx, questionID, order)
	list, _ := args.Get(0).([]*models.Option)
	return list, args.Error(1)
}

// MockAnswerSheetRepository is a mock implementation of AnswerSheetRepository
type MockAnswerSheetRepository struct {
	mock.Mock
}

func (m *MockAnswerSheetRepository) Create(ctx context.Context, tx *gorm.DB, sheet *models.AnswerSheet) error {
	args := m.Called(ctx, tx, sheet)
	return args.Error(0)
}

func (m *MockAnswerSheetRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AnswerSheet, error) {
	args := m.Called(ctx, tx, id)
	s, _ := args.Get(0).(*models.AnswerSheet)
	return s, args.Error(1)
}

func (m *MockAnswerSheetRepository) GetByQuestionnaireAndUser(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	args := m.Called(ctx, tx, questionnaireID, userID)
	s, _ := args.Get(0).(*models.AnswerSheet)
	return s, args.Error(1)
}

func (m *MockAnswerSheetRepository) List(ctx context.Context, tx *gorm.DB, order ...repositories.Ordering) ([]*models.AnswerSheet, error) {
	args := m.Called(ctx, tx, order)
	list, _ := args.Get(0).([]*models.AnswerSheet)
	return list, args.Error(1)
}

func (m *MockAnswerSheetRepository) Touch(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error {
	args := m.Called(ctx, tx, id, at)
	return args.Error(0)
}

func (m *MockAnswerSheetRepository) GetMaxAnswers(ctx context.Context, tx *gorm.DB) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}

// MockAnswerRepository is a mock implementation of AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error {
	args := m.Called(ctx, tx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) ([]*models.Answer, error) {
	args := m.Called(ctx, tx, sheetID)
	list, _ := args.Get(0).([]*models.Answer)
	return list, args.Error(1)
}

func (m *MockAnswerRepository) CountBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) (int64, error) {
	args := m.Called(ctx, tx, sheetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepository) HasAnswer(ctx context.Context, tx *gorm.DB, sheetID, questionID uint) (bool, error) {
	args := m.Called(ctx, tx, sheetID, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnswerRepository) GetAnsweredQuestionIDs(ctx context.Context, tx *gorm.DB, sheetID uint) ([]uint, error) {
	args := m.Called(ctx, tx, sheetID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	args := m.Called(ctx, tx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, tx *gorm.DB, user *models.User) error {
	args := m.Called(ctx, tx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePreferences(ctx context.Context, tx *gorm.DB, id string, preferences datatypes.JSON) error {
	args := m.Called(ctx, tx, id, preferences)
	return args.Error(0)
}

// MockRepository is a mock implementation of the main Repository interface
type MockRepository struct {
	questionnaireRepo *MockQuestionnaireRepository
	questionRepo      *MockQuestionRepository
	optionRepo        *MockOptionRepository
	answerSheetRepo   *MockAnswerSheetRepository
	answerRepo        *MockAnswerRepository
	userRepo          *MockUserRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		questionnaireRepo: &MockQuestionnaireRepository{},
		questionRepo:      &MockQuestionRepository{},
		optionRepo:        &MockOptionRepository{},
		answerSheetRepo:   &MockAnswerSheetRepository{},
		answerRepo:        &MockAnswerRepository{},
		userRepo:          &MockUserRepository{},
	}
}

func (m *MockRepository) Questionnaire() repositories.QuestionnaireRepository { return m.questionnaireRepo }
func (m *MockRepository) Question() repositories.QuestionRepository           { return m.questionRepo }
func (m *MockRepository) Option() repositories.OptionRepository               { return m.optionRepo }
func (m *MockRepository) AnswerSheet() repositories.AnswerSheetRepository     { return m.answerSheetRepo }
func (m *MockRepository) Answer() repositories.AnswerRepository               { return m.answerRepo }
func (m *MockRepository) User() repositories.UserRepository                   { return m.userRepo }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *MockRepository) AutoMigrate(ctx context.Context) error { return nil }
func (m *MockRepository) Ping(ctx context.Context) error        { return nil }
func (m *MockRepository) Close() error                          { return nil }

// AssertExpectations checks every sub-repository mock
func (m *MockRepository) AssertExpectations(t mock.TestingT) {
	m.questionnaireRepo.AssertExpectations(t)
	m.questionRepo.AssertExpectations(t)
	m.optionRepo.AssertExpectations(t)
	m.answerSheetRepo.AssertExpectations(t)
	m.answerRepo.AssertExpectations(t)
	m.userRepo.AssertExpectations(t)
}
