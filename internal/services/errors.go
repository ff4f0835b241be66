package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/survey-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Questionnaire specific errors
	ErrQuestionnaireNotFound  = errors.New("questionnaire not found")
	ErrQuestionnaireNotActive = errors.New("questionnaire is not active")

	// Question specific errors
	ErrQuestionNotFound       = errors.New("question not found")
	ErrQuestionMismatch       = errors.New("question does not belong to questionnaire")
	ErrQuestionDuplicateOrder = errors.New("question order already exists in questionnaire")

	// Option specific errors
	ErrOptionNotFound = errors.New("option not found")
	ErrOptionMismatch = errors.New("option does not belong to question")

	// Answer sheet specific errors
	ErrAnswerSheetNotFound     = errors.New("answer sheet not found")
	ErrDuplicateAttempt        = errors.New("answer sheet already exists for user and questionnaire")
	ErrQuestionAlreadyAnswered = errors.New("question already answered on this answer sheet")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrSurveysDeclined = errors.New("user declined surveys")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuestionnaireNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrOptionNotFound) ||
		errors.Is(err, ErrAnswerSheetNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrQuestionMismatch) ||
		errors.Is(err, ErrOptionMismatch) {
		return true
	}
	var ve apperrors.ValidationErrors
	var single *apperrors.ValidationError
	return errors.As(err, &ve) || errors.As(err, &single)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre) || errors.Is(err, ErrQuestionnaireNotActive)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrDuplicateAttempt) ||
		errors.Is(err, ErrQuestionAlreadyAnswered) ||
		errors.Is(err, ErrQuestionDuplicateOrder)
}
