package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/cache"
	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"github.com/SAP-F-2025/survey-service/internal/validator"
)

// ServiceManager gives handlers and commands access to every service
type ServiceManager interface {
	Progress() ProgressService
	Scoring() ScoringService
	Availability() AvailabilityService
	Export() ExportService
	Answer() AnswerService
	SurveyChoice() SurveyChoiceService
	Questionnaire() QuestionnaireService
	User() UserService
}

type ManagerConfig struct {
	ReminderTTL time.Duration
	Export      ExportConfig
}

type serviceManager struct {
	progress      ProgressService
	scoring       ScoringService
	availability  AvailabilityService
	export        ExportService
	answer        AnswerService
	surveyChoice  SurveyChoiceService
	questionnaire QuestionnaireService
	user          UserService
}

// NewServiceManager wires the services. reminders may be nil when Redis is
// not configured.
func NewServiceManager(
	repo repositories.Repository,
	reminders cache.ReminderStore,
	publisher events.EventPublisher,
	validator *validator.Validator,
	config ManagerConfig,
	logger *slog.Logger,
) ServiceManager {
	progress := NewProgressService(repo, logger)

	return &serviceManager{
		progress:      progress,
		scoring:       NewScoringService(repo, logger),
		availability:  NewAvailabilityService(repo, progress, reminders, logger),
		export:        NewExportService(repo, progress, publisher, config.Export, logger),
		answer:        NewAnswerService(repo, progress, publisher, validator, logger),
		surveyChoice:  NewSurveyChoiceService(repo, progress, reminders, publisher, validator, config.ReminderTTL, logger),
		questionnaire: NewQuestionnaireService(repo, validator, logger),
		user:          NewUserService(repo, logger),
	}
}

func (m *serviceManager) Progress() ProgressService           { return m.progress }
func (m *serviceManager) Scoring() ScoringService             { return m.scoring }
func (m *serviceManager) Availability() AvailabilityService   { return m.availability }
func (m *serviceManager) Export() ExportService               { return m.export }
func (m *serviceManager) Answer() AnswerService               { return m.answer }
func (m *serviceManager) SurveyChoice() SurveyChoiceService   { return m.surveyChoice }
func (m *serviceManager) Questionnaire() QuestionnaireService { return m.questionnaire }
func (m *serviceManager) User() UserService                   { return m.user }
