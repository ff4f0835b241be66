package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/survey-service/internal/errors"
	"github.com/SAP-F-2025/survey-service/internal/models"
)

const (
	MinOptionsPerQuestion = 2
	MaxOptionsPerQuestion = 10
)

// QuestionValidator handles the authoring rules of multiple choice questions
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateQuestion checks a question together with its options. Existing
// questions without a correct option still score, but new ones must have one.
func (v *QuestionValidator) ValidateQuestion(question *models.Question) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(question.QuestionText) == "" {
		errs = append(errs, *errors.NewValidationErrorWithRule("question_text", "is required", "required", question.QuestionText))
	}
	if question.QuestionOrder < 0 {
		errs = append(errs, *errors.NewValidationErrorWithRule("question_order", "must be greater than or equal to 0", "gte", question.QuestionOrder))
	}

	if len(question.Options) < MinOptionsPerQuestion {
		errs = append(errs, *errors.NewValidationErrorWithRule("options",
			fmt.Sprintf("must have at least %d options", MinOptionsPerQuestion), "min_options", len(question.Options)))
	}
	if len(question.Options) > MaxOptionsPerQuestion {
		errs = append(errs, *errors.NewValidationErrorWithRule("options",
			fmt.Sprintf("cannot have more than %d options", MaxOptionsPerQuestion), "max_options", len(question.Options)))
	}

	orders := make(map[int]bool, len(question.Options))
	correct := 0
	for i, option := range question.Options {
		if strings.TrimSpace(option.OptionText) == "" {
			errs = append(errs, *errors.NewValidationErrorWithRule(fmt.Sprintf("options[%d].option_text", i), "is required", "required", option.OptionText))
		}
		if orders[option.OptionOrder] {
			errs = append(errs, *errors.NewValidationErrorWithRule(fmt.Sprintf("options[%d].option_order", i),
				"must be unique within the question", "unique_order", option.OptionOrder))
		}
		orders[option.OptionOrder] = true
		if option.IsCorrect {
			correct++
		}
	}
	if len(question.Options) > 0 && correct == 0 {
		errs = append(errs, *errors.NewValidationErrorWithRule("options", "must have at least 1 correct option", "correct_option", 0))
	}

	return errs
}

// ValidateBatch validates questions that are created together, including
// uniqueness of their order within the questionnaire.
func (v *QuestionValidator) ValidateBatch(questions []models.Question, existingOrders ...int) ValidationErrors {
	var errs ValidationErrors

	orders := make(map[int]bool, len(questions)+len(existingOrders))
	for _, order := range existingOrders {
		orders[order] = true
	}

	for i := range questions {
		for _, e := range v.ValidateQuestion(&questions[i]) {
			e.Field = fmt.Sprintf("questions[%d].%s", i, e.Field)
			errs = append(errs, e)
		}
		if orders[questions[i].QuestionOrder] {
			errs = append(errs, *errors.NewValidationErrorWithRule(fmt.Sprintf("questions[%d].question_order", i),
				"must be unique within the questionnaire", "unique_order", questions[i].QuestionOrder))
		}
		orders[questions[i].QuestionOrder] = true
	}

	return errs
}
