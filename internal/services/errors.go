package services

import (
	"errors"

	apperrors "github.com/studyprep/exam-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Subject errors
	ErrSubjectNotFound = errors.New("subject not found")

	// Assembly errors
	//
	// ErrEmptyBank means the bank holds no usable question of any type for
	// the subject; a shortage (some questions, fewer than the matrix asks
	// for) is not an error and produces a degraded exam instead.
	ErrEmptyBank = errors.New("no questions available for subject")

	// Fixed exam errors
	ErrExamNotFound          = errors.New("exam not found")
	ErrInsufficientQuestions = errors.New("no questions could be selected for exam")

	// Question/attempt errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSubjectNotFound) ||
		errors.Is(err, ErrExamNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrAttemptNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}
