package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// memoryStore is an in-process repositories.Repository enforcing the same
// unique constraints as the database schema. Transactions run fn directly.
type memoryStore struct {
	mu     sync.Mutex
	nextID uint
	clock  time.Time

	users          map[string]*models.User
	questionnaires map[uint]*models.Questionnaire
	questions      map[uint]*models.Question
	options        map[uint]*models.Option
	sheets         map[uint]*models.AnswerSheet
	answers        map[uint]*models.Answer
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clock:          time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		users:          make(map[string]*models.User),
		questionnaires: make(map[uint]*models.Questionnaire),
		questions:      make(map[uint]*models.Question),
		options:        make(map[uint]*models.Option),
		sheets:         make(map[uint]*models.AnswerSheet),
		answers:        make(map[uint]*models.Answer),
	}
}

// id and tick must be called with mu held
func (s *memoryStore) id() uint {
	s.nextID++
	return s.nextID
}

// tick advances the clock so creation times are strictly increasing
func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func notFound(kind string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", kind, id, repositories.ErrNotFound)
}

func duplicate(kind string) error {
	return fmt.Errorf("%s: %w", kind, repositories.ErrDuplicate)
}

func (s *memoryStore) Questionnaire() repositories.QuestionnaireRepository {
	return memQuestionnaires{s}
}
func (s *memoryStore) Question() repositories.QuestionRepository       { return memQuestions{s} }
func (s *memoryStore) Option() repositories.OptionRepository           { return memOptions{s} }
func (s *memoryStore) AnswerSheet() repositories.AnswerSheetRepository { return memSheets{s} }
func (s *memoryStore) Answer() repositories.AnswerRepository           { return memAnswers{s} }
func (s *memoryStore) User() repositories.UserRepository               { return memUsers{s} }

func (s *memoryStore) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (s *memoryStore) AutoMigrate(ctx context.Context) error { return nil }
func (s *memoryStore) Ping(ctx context.Context) error        { return nil }
func (s *memoryStore) Close() error                          { return nil }

// ===== QUESTIONNAIRES =====

type memQuestionnaires struct{ s *memoryStore }

func (r memQuestionnaires) Create(ctx context.Context, tx *gorm.DB, q *models.Questionnaire) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q.ID = r.s.id()
	q.CreatedAt = r.s.tick()
	q.UpdatedAt = q.CreatedAt
	stored := *q
	stored.Questions = nil
	r.s.questionnaires[q.ID] = &stored
	return nil
}

func (r memQuestionnaires) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.questionnaires[id]
	if !ok {
		return nil, notFound("questionnaire", id)
	}
	out := *q
	return &out, nil
}

func (r memQuestionnaires) GetByIDWithQuestions(ctx context.Context, tx *gorm.DB, id uint) (*models.Questionnaire, error) {
	out, err := r.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	questions, _ := memQuestions(r).GetByQuestionnaire(ctx, tx, id, repositories.ByQuestionOrder)
	for _, q := range questions {
		options, _ := memOptions(r).GetByQuestion(ctx, tx, q.ID, repositories.ByOptionOrder)
		for _, o := range options {
			q.Options = append(q.Options, *o)
		}
		out.Questions = append(out.Questions, *q)
	}
	return out, nil
}

func (r memQuestionnaires) Update(ctx context.Context, tx *gorm.DB, q *models.Questionnaire) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questionnaires[q.ID]; !ok {
		return notFound("questionnaire", q.ID)
	}
	stored := *q
	stored.Questions = nil
	r.s.questionnaires[q.ID] = &stored
	return nil
}

func (r memQuestionnaires) List(ctx context.Context, tx *gorm.DB, filters repositories.QuestionnaireFilters) ([]*models.Questionnaire, int64, error) {
	r.s.mu.Lock()
	var list []*models.Questionnaire
	for _, q := range r.s.questionnaires {
		if filters.Active != nil && q.Active != *filters.Active {
			continue
		}
		if filters.CreatedBy != nil && q.CreatedBy != *filters.CreatedBy {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(q.Title), strings.ToLower(filters.Search)) {
			continue
		}
		out := *q
		list = append(list, &out)
	}
	r.s.mu.Unlock()

	sortQuestionnaires(list, filters.Ordering())
	total := int64(len(list))
	if filters.Offset < len(list) {
		list = list[filters.Offset:]
	} else {
		list = nil
	}
	if filters.Limit > 0 && filters.Limit < len(list) {
		list = list[:filters.Limit]
	}
	return list, total, nil
}

func (r memQuestionnaires) GetActive(ctx context.Context, tx *gorm.DB, order repositories.Ordering) ([]*models.Questionnaire, error) {
	active := true
	list, _, err := r.List(ctx, tx, repositories.QuestionnaireFilters{Active: &active, SortBy: order.Field, SortOrder: map[bool]string{true: "desc", false: "asc"}[order.Desc]})
	return list, err
}

func (r memQuestionnaires) SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.questionnaires[id]
	if !ok {
		return notFound("questionnaire", id)
	}
	q.Active = active
	return nil
}

func sortQuestionnaires(list []*models.Questionnaire, order repositories.Ordering) {
	less := func(a, b *models.Questionnaire) bool {
		switch order.Field {
		case "title":
			return a.Title < b.Title
		case "id":
			return a.ID < b.ID
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if order.Desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// ===== QUESTIONS AND OPTIONS =====

type memQuestions struct{ s *memoryStore }

func (r memQuestions) Create(ctx context.Context, tx *gorm.DB, q *models.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.questions {
		if existing.QuestionnaireID == q.QuestionnaireID && existing.QuestionOrder == q.QuestionOrder {
			return duplicate("question order")
		}
	}
	q.ID = r.s.id()
	stored := *q
	stored.Options = nil
	r.s.questions[q.ID] = &stored
	return nil
}

func (r memQuestions) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.questions[id]
	if !ok {
		return nil, notFound("question", id)
	}
	out := *q
	return &out, nil
}

func (r memQuestions) GetByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint, order repositories.Ordering) ([]*models.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*models.Question
	for _, q := range r.s.questions {
		if q.QuestionnaireID == questionnaireID {
			out := *q
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if order.Desc {
			return list[i].QuestionOrder > list[j].QuestionOrder
		}
		return list[i].QuestionOrder < list[j].QuestionOrder
	})
	return list, nil
}

func (r memQuestions) CountByQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID uint) (int64, error) {
	list, err := r.GetByQuestionnaire(ctx, tx, questionnaireID, repositories.ByQuestionOrder)
	return int64(len(list)), err
}

type memOptions struct{ s *memoryStore }

func (r memOptions) Create(ctx context.Context, tx *gorm.DB, o *models.Option) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.options {
		if existing.QuestionID == o.QuestionID && existing.OptionOrder == o.OptionOrder {
			return duplicate("option order")
		}
	}
	o.ID = r.s.id()
	stored := *o
	r.s.options[o.ID] = &stored
	return nil
}

func (r memOptions) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Option, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.options[id]
	if !ok {
		return nil, notFound("option", id)
	}
	out := *o
	return &out, nil
}

func (r memOptions) GetByQuestion(ctx context.Context, tx *gorm.DB, questionID uint, order repositories.Ordering) ([]*models.Option, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*models.Option
	for _, o := range r.s.options {
		if o.QuestionID == questionID {
			out := *o
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].OptionOrder < list[j].OptionOrder })
	return list, nil
}

// ===== ANSWER SHEETS AND ANSWERS =====

type memSheets struct{ s *memoryStore }

func (r memSheets) Create(ctx context.Context, tx *gorm.DB, sheet *models.AnswerSheet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.sheets {
		if existing.QuestionnaireID == sheet.QuestionnaireID && existing.UserID == sheet.UserID {
			return duplicate("answer sheet")
		}
	}
	sheet.ID = r.s.id()
	sheet.CreatedAt = r.s.tick()
	sheet.UpdatedAt = sheet.CreatedAt
	stored := *sheet
	r.s.sheets[sheet.ID] = &stored
	return nil
}

func (r memSheets) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AnswerSheet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sheet, ok := r.s.sheets[id]
	if !ok {
		return nil, notFound("answer sheet", id)
	}
	out := *sheet
	return &out, nil
}

func (r memSheets) GetByQuestionnaireAndUser(ctx context.Context, tx *gorm.DB, questionnaireID uint, userID string) (*models.AnswerSheet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sheet := range r.s.sheets {
		if sheet.QuestionnaireID == questionnaireID && sheet.UserID == userID {
			out := *sheet
			return &out, nil
		}
	}
	return nil, nil
}

// List sorts by questionnaire then user regardless of order; other orders
// are not used by the services.
func (r memSheets) List(ctx context.Context, tx *gorm.DB, order ...repositories.Ordering) ([]*models.AnswerSheet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*models.AnswerSheet
	for _, sheet := range r.s.sheets {
		out := *sheet
		if u, ok := r.s.users[sheet.UserID]; ok {
			user := *u
			out.User = &user
		}
		if q, ok := r.s.questionnaires[sheet.QuestionnaireID]; ok {
			questionnaire := *q
			out.Questionnaire = &questionnaire
		}
		list = append(list, &out)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].QuestionnaireID != list[j].QuestionnaireID {
			return list[i].QuestionnaireID < list[j].QuestionnaireID
		}
		return list[i].UserID < list[j].UserID
	})
	return list, nil
}

func (r memSheets) Touch(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sheet, ok := r.s.sheets[id]
	if !ok {
		return notFound("answer sheet", id)
	}
	sheet.UpdatedAt = at
	return nil
}

func (r memSheets) GetMaxAnswers(ctx context.Context, tx *gorm.DB) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[uint]int)
	max := 0
	for _, a := range r.s.answers {
		counts[a.AnswerSheetID]++
		if counts[a.AnswerSheetID] > max {
			max = counts[a.AnswerSheetID]
		}
	}
	return max, nil
}

type memAnswers struct{ s *memoryStore }

func (r memAnswers) Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.answers {
		if existing.AnswerSheetID == answer.AnswerSheetID && existing.QuestionID == answer.QuestionID {
			return duplicate("answer")
		}
	}
	answer.ID = r.s.id()
	answer.CreatedAt = r.s.tick()
	stored := *answer
	r.s.answers[answer.ID] = &stored
	return nil
}

func (r memAnswers) GetBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) ([]*models.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*models.Answer
	for _, a := range r.s.answers {
		if a.AnswerSheetID != sheetID {
			continue
		}
		out := *a
		if q, ok := r.s.questions[a.QuestionID]; ok {
			question := *q
			out.Question = &question
		}
		if o, ok := r.s.options[a.ChosenOptionID]; ok {
			option := *o
			out.ChosenOption = &option
		}
		list = append(list, &out)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Question.QuestionOrder < list[j].Question.QuestionOrder
	})
	return list, nil
}

func (r memAnswers) CountBySheet(ctx context.Context, tx *gorm.DB, sheetID uint) (int64, error) {
	ids, err := r.GetAnsweredQuestionIDs(ctx, tx, sheetID)
	return int64(len(ids)), err
}

func (r memAnswers) HasAnswer(ctx context.Context, tx *gorm.DB, sheetID, questionID uint) (bool, error) {
	ids, err := r.GetAnsweredQuestionIDs(ctx, tx, sheetID)
	for _, id := range ids {
		if id == questionID {
			return true, err
		}
	}
	return false, err
}

func (r memAnswers) GetAnsweredQuestionIDs(ctx context.Context, tx *gorm.DB, sheetID uint) ([]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uint
	for _, a := range r.s.answers {
		if a.AnswerSheetID == sheetID {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids, nil
}

// ===== USERS =====

type memUsers struct{ s *memoryStore }

func (r memUsers) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	out := *u
	return &out, nil
}

func (r memUsers) Upsert(ctx context.Context, tx *gorm.DB, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[user.ID]; ok {
		existing.Username = user.Username
		existing.FullName = user.FullName
		existing.Email = user.Email
		return nil
	}
	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

func (r memUsers) UpdatePreferences(ctx context.Context, tx *gorm.DB, id string, preferences datatypes.JSON) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return notFound("user", id)
	}
	u.Preferences = preferences
	return nil
}

// ===== FIXTURES =====

// addUser stores a user with the given username
func (s *memoryStore) addUser(id, username string) *models.User {
	user := &models.User{ID: id, Username: username, IsActive: true}
	_ = memUsers{s}.Upsert(context.Background(), nil, user)
	return user
}

// addQuestionnaire stores a questionnaire whose questions are numbered from
// 1. Each argument lists the correctness of a question's options; option
// texts are "right" or "wrong" suffixed with the question number.
func (s *memoryStore) addQuestionnaire(title string, active bool, questions ...[]bool) *models.Questionnaire {
	ctx := context.Background()
	q := &models.Questionnaire{
		Title:            title,
		IntroductionText: "Intro to " + title,
		ThankYouText:     "Thanks for " + title,
		Active:           active,
		CreatedBy:        "admin",
	}
	_ = memQuestionnaires{s}.Create(ctx, nil, q)

	for i, correctness := range questions {
		question := &models.Question{
			QuestionnaireID: q.ID,
			QuestionOrder:   i + 1,
			QuestionText:    fmt.Sprintf("%s question %d", title, i+1),
		}
		_ = memQuestions{s}.Create(ctx, nil, question)
		for j, correct := range correctness {
			text := "wrong"
			if correct {
				text = "right"
			}
			option := &models.Option{
				QuestionID:  question.ID,
				OptionOrder: j + 1,
				OptionText:  fmt.Sprintf("%s %d", text, i+1),
				IsCorrect:   correct,
			}
			_ = memOptions{s}.Create(ctx, nil, option)
			question.Options = append(question.Options, *option)
		}
		q.Questions = append(q.Questions, *question)
	}
	return q
}

// option returns the first option of question with the given correctness
func option(question models.Question, correct bool) models.Option {
	for _, o := range question.Options {
		if o.IsCorrect == correct {
			return o
		}
	}
	panic("no matching option")
}
