package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeReminders is a ReminderStore without expiry
type fakeReminders struct {
	mu      sync.Mutex
	snoozed map[string]map[uint]time.Duration
	err     error
}

func newFakeReminders() *fakeReminders {
	return &fakeReminders{snoozed: make(map[string]map[uint]time.Duration)}
}

func (f *fakeReminders) Snooze(ctx context.Context, userID string, questionnaireID uint, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.snoozed[userID] == nil {
		f.snoozed[userID] = make(map[uint]time.Duration)
	}
	f.snoozed[userID][questionnaireID] = ttl
	return nil
}

func (f *fakeReminders) IsSnoozed(ctx context.Context, userID string, questionnaireID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.snoozed[userID][questionnaireID]
	return ok, nil
}

func (f *fakeReminders) Clear(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.snoozed, userID)
	return nil
}

// testEnv wires every service over one memoryStore
type testEnv struct {
	store     *memoryStore
	reminders *fakeReminders
	publisher *events.MockEventPublisher
	services  ServiceManager
}

func newTestEnv(exportDir string) *testEnv {
	logger := testLogger()
	env := &testEnv{
		store:     newMemoryStore(),
		reminders: newFakeReminders(),
		publisher: events.NewMockEventPublisher(logger),
	}
	env.services = NewServiceManager(env.store, env.reminders, env.publisher, validator.New(), ManagerConfig{
		ReminderTTL: 24 * time.Hour,
		Export:      ExportConfig{Dir: exportDir},
	}, logger)
	return env
}

// answer submits option o for question q of questionnaire qid
func (e *testEnv) answer(userID string, qid, questionID, optionID uint) (*SubmitAnswerResponse, error) {
	return e.services.Answer().SubmitAnswer(context.Background(), userID, &SubmitAnswerRequest{
		QuestionnaireID: qid,
		QuestionID:      questionID,
		ChosenOptionID:  optionID,
	})
}
