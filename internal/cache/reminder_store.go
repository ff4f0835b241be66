package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ReminderStore remembers which questionnaires a user asked to be reminded
// about later. A snoozed questionnaire is not offered until the entry expires.
type ReminderStore interface {
	Snooze(ctx context.Context, userID string, questionnaireID uint, ttl time.Duration) error
	IsSnoozed(ctx context.Context, userID string, questionnaireID uint) (bool, error)
	Clear(ctx context.Context, userID string) error
}

type reminder struct {
	QuestionnaireID uint      `json:"questionnaire_id"`
	Until           time.Time `json:"until"`
}

type cacheReminderStore struct {
	cache CacheService
}

func NewReminderStore(cache CacheService) ReminderStore {
	return &cacheReminderStore{cache: cache}
}

func reminderKey(userID string, questionnaireID uint) string {
	return fmt.Sprintf("survey:reminder:%s:%d", userID, questionnaireID)
}

func (s *cacheReminderStore) Snooze(ctx context.Context, userID string, questionnaireID uint, ttl time.Duration) error {
	value := reminder{
		QuestionnaireID: questionnaireID,
		Until:           time.Now().Add(ttl).UTC(),
	}
	return s.cache.Set(ctx, reminderKey(userID, questionnaireID), value, ttl)
}

func (s *cacheReminderStore) IsSnoozed(ctx context.Context, userID string, questionnaireID uint) (bool, error) {
	var value reminder
	err := s.cache.Get(ctx, reminderKey(userID, questionnaireID), &value)
	if errors.Is(err, ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *cacheReminderStore) Clear(ctx context.Context, userID string) error {
	return s.cache.DeletePattern(ctx, fmt.Sprintf("survey:reminder:%s:*", userID))
}
