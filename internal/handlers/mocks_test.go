package handlers

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/export"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/stretchr/testify/mock"
)

type MockProgressService struct{ mock.Mock }

func (m *MockProgressService) Status(ctx context.Context, questionnaireID uint, userID string) (models.QuestionnaireStatus, error) {
	args := m.Called(ctx, questionnaireID, userID)
	return args.Get(0).(models.QuestionnaireStatus), args.Error(1)
}

func (m *MockProgressService) SheetStatus(ctx context.Context, sheet *models.AnswerSheet) (models.QuestionnaireStatus, error) {
	args := m.Called(ctx, sheet)
	return args.Get(0).(models.QuestionnaireStatus), args.Error(1)
}

func (m *MockProgressService) NextQuestion(ctx context.Context, questionnaireID uint, userID string) (*models.Question, error) {
	args := m.Called(ctx, questionnaireID, userID)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func (m *MockProgressService) Progress(ctx context.Context, questionnaireID uint, userID string) (*services.ProgressResponse, error) {
	args := m.Called(ctx, questionnaireID, userID)
	resp, _ := args.Get(0).(*services.ProgressResponse)
	return resp, args.Error(1)
}

type MockScoringService struct{ mock.Mock }

func (m *MockScoringService) Score(ctx context.Context, sheetID uint) (int, error) {
	args := m.Called(ctx, sheetID)
	return args.Int(0), args.Error(1)
}

func (m *MockScoringService) ScoreForUser(ctx context.Context, questionnaireID uint, userID string) (*services.ScoreResponse, error) {
	args := m.Called(ctx, questionnaireID, userID)
	resp, _ := args.Get(0).(*services.ScoreResponse)
	return resp, args.Error(1)
}

type MockAvailabilityService struct{ mock.Mock }

func (m *MockAvailabilityService) NextAvailable(ctx context.Context, userID string) (*models.Questionnaire, error) {
	args := m.Called(ctx, userID)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

func (m *MockAvailabilityService) CheckForQuestionnaire(ctx context.Context, userID string) (*models.Questionnaire, error) {
	args := m.Called(ctx, userID)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

type MockExportService struct{ mock.Mock }

func (m *MockExportService) BuildRows(ctx context.Context) (*export.Table, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(*export.Table)
	return table, args.Error(1)
}

func (m *MockExportService) ExportFileName(now time.Time) string {
	return m.Called(now).String(0)
}

// Export writes the "body" argument to w before returning
func (m *MockExportService) Export(ctx context.Context, w io.Writer, format models.ExportFormat) (*models.ExportSummary, error) {
	args := m.Called(ctx, w, format)
	summary, _ := args.Get(0).(*models.ExportSummary)
	if summary != nil {
		_, _ = io.WriteString(w, "User,Questionnaire\n")
	}
	return summary, args.Error(1)
}

func (m *MockExportService) ExportToFile(ctx context.Context, now time.Time) (*models.ExportSummary, error) {
	args := m.Called(ctx, now)
	summary, _ := args.Get(0).(*models.ExportSummary)
	return summary, args.Error(1)
}

type MockAnswerService struct{ mock.Mock }

func (m *MockAnswerService) StartSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	args := m.Called(ctx, questionnaireID, userID)
	sheet, _ := args.Get(0).(*models.AnswerSheet)
	return sheet, args.Error(1)
}

func (m *MockAnswerService) EnsureSheet(ctx context.Context, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	args := m.Called(ctx, questionnaireID, userID)
	sheet, _ := args.Get(0).(*models.AnswerSheet)
	return sheet, args.Error(1)
}

func (m *MockAnswerService) SubmitAnswer(ctx context.Context, userID string, req *services.SubmitAnswerRequest) (*services.SubmitAnswerResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*services.SubmitAnswerResponse)
	return resp, args.Error(1)
}

type MockSurveyChoiceService struct{ mock.Mock }

func (m *MockSurveyChoiceService) Get(ctx context.Context, questionnaireID uint) (*services.QuestionnaireResponse, error) {
	args := m.Called(ctx, questionnaireID)
	resp, _ := args.Get(0).(*services.QuestionnaireResponse)
	return resp, args.Error(1)
}

func (m *MockSurveyChoiceService) Choose(ctx context.Context, userID string, req *services.ChoiceRequest) (*services.ChoiceResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*services.ChoiceResponse)
	return resp, args.Error(1)
}

type MockQuestionnaireService struct{ mock.Mock }

func (m *MockQuestionnaireService) Create(ctx context.Context, creatorID string, req *services.CreateQuestionnaireRequest) (*models.Questionnaire, error) {
	args := m.Called(ctx, creatorID, req)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireService) AddQuestion(ctx context.Context, questionnaireID uint, req *services.QuestionRequest) (*models.Question, error) {
	args := m.Called(ctx, questionnaireID, req)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func (m *MockQuestionnaireService) SetActive(ctx context.Context, id uint, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockQuestionnaireService) List(ctx context.Context, filters services.ListFilters) (*services.QuestionnaireListResponse, error) {
	args := m.Called(ctx, filters)
	resp, _ := args.Get(0).(*services.QuestionnaireListResponse)
	return resp, args.Error(1)
}

func (m *MockQuestionnaireService) GetByID(ctx context.Context, id uint) (*models.Questionnaire, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*models.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireService) NumberOfQuestions(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Sync(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockServiceManager is a mock implementation of services.ServiceManager
type MockServiceManager struct {
	progress      *MockProgressService
	scoring       *MockScoringService
	availability  *MockAvailabilityService
	export        *MockExportService
	answer        *MockAnswerService
	surveyChoice  *MockSurveyChoiceService
	questionnaire *MockQuestionnaireService
	user          *MockUserService
}

func newMockServiceManager() *MockServiceManager {
	return &MockServiceManager{
		progress:      &MockProgressService{},
		scoring:       &MockScoringService{},
		availability:  &MockAvailabilityService{},
		export:        &MockExportService{},
		answer:        &MockAnswerService{},
		surveyChoice:  &MockSurveyChoiceService{},
		questionnaire: &MockQuestionnaireService{},
		user:          &MockUserService{},
	}
}

func (m *MockServiceManager) Progress() services.ProgressService           { return m.progress }
func (m *MockServiceManager) Scoring() services.ScoringService             { return m.scoring }
func (m *MockServiceManager) Availability() services.AvailabilityService   { return m.availability }
func (m *MockServiceManager) Export() services.ExportService               { return m.export }
func (m *MockServiceManager) Answer() services.AnswerService               { return m.answer }
func (m *MockServiceManager) SurveyChoice() services.SurveyChoiceService   { return m.surveyChoice }
func (m *MockServiceManager) Questionnaire() services.QuestionnaireService { return m.questionnaire }
func (m *MockServiceManager) User() services.UserService                   { return m.user }

var errInvalidToken = errors.New("invalid token")

// fakeAuthenticator accepts "<user>" and "admin-<user>" tokens
type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(token string) (*Identity, error) {
	if token == "bad" {
		return nil, errInvalidToken
	}
	return DevAuthenticator{}.Authenticate(token)
}
