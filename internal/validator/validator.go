package validator

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/SAP-F-2025/survey-service/internal/errors"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Use shared validation errors from errors package
type ValidationError = errors.ValidationError
type ValidationErrors = errors.ValidationErrors

// Validator combines struct tag validation with questionnaire authoring rules
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(),
	}
}

// ValidateStruct validates struct tags, returning ValidationErrors on failure
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if converted := errors.ToValidationErrors(err); len(converted) > 0 {
			return converted
		}
		return err
	}
	return nil
}

// Question returns the question validator
func (v *Validator) Question() *QuestionValidator {
	return v.questionValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("survey_choice", validateSurveyChoice)
	validate.RegisterValidation("export_format", validateExportFormat)
	validate.RegisterValidation("questionnaire_title", lengthBetween(1, 100))
	validate.RegisterValidation("question_text", lengthBetween(1, 255))

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateSurveyChoice(fl validator.FieldLevel) bool {
	return models.SurveyChoice(fl.Field().String()).IsValid()
}

func validateExportFormat(fl validator.FieldLevel) bool {
	return models.ExportFormat(fl.Field().String()).IsValid()
}

// lengthBetween counts runes, so non-ASCII titles are measured by characters
func lengthBetween(min, max int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
		return n >= min && n <= max
	}
}
