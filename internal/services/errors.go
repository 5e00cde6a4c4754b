package services

import (
	"errors"

	apperrors "github.com/loop-labs/quiz-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")

	// Catalog specific errors
	ErrCatalogUnavailable = errors.New("question catalog unavailable")
	ErrCatalogInvalid     = errors.New("question catalog failed validation")

	// Grading specific errors
	ErrTooManyAnswers = errors.New("answer collection exceeds catalog size")

	// Import/export specific errors
	ErrImportUnsupportedFormat = errors.New("unsupported catalog file format")
	ErrImportNoQuestions       = errors.New("imported file contains no questions")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrTooManyAnswers) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsCatalog checks if error represents a catalog availability problem
func IsCatalog(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable) || errors.Is(err, ErrCatalogInvalid)
}
