// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic errors
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodePlanNotFound    ErrorCode = "PLAN_NOT_FOUND"
	CodeRecipeNotFound  ErrorCode = "RECIPE_NOT_FOUND"
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeInvalidSlot     ErrorCode = "INVALID_SLOT"
	CodeNoCandidates    ErrorCode = "NO_CANDIDATES"
	CodeNothingToUndo   ErrorCode = "NOTHING_TO_UNDO"
	CodeVersionConflict ErrorCode = "VERSION_CONFLICT"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound, CodePlanNotFound, CodeRecipeNotFound, CodeUserNotFound, CodeInvalidSlot:
		return http.StatusNotFound
	case CodeConflict, CodeNoCandidates, CodeNothingToUndo, CodeVersionConflict:
		return http.StatusConflict
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Business domain specific errors

// NewInvalidRequestError creates an invalid request error for malformed
// generation or substitution parameters
func NewInvalidRequestError(details string) *AppError {
	return NewAppError(CodeInvalidRequest, "Invalid request", details)
}

// NewPlanNotFoundError creates a meal plan not found error
func NewPlanNotFoundError(planID string) *AppError {
	return NewAppError(
		CodePlanNotFound,
		"Meal plan not found",
		fmt.Sprintf("Meal plan with ID %s does not exist", planID),
	).WithMetadata("plan_id", planID)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %s does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewUserNotFoundError creates a user not found error
func NewUserNotFoundError(userID string) *AppError {
	return NewAppError(
		CodeUserNotFound,
		"User not found",
		fmt.Sprintf("User with ID %s does not exist", userID),
	).WithMetadata("user_id", userID)
}

// NewInvalidSlotError creates an error for a meal index outside the plan
func NewInvalidSlotError(mealIndex int) *AppError {
	return NewAppError(
		CodeInvalidSlot,
		"Invalid meal slot",
		fmt.Sprintf("Meal index %d is out of range for this plan", mealIndex),
	).WithMetadata("meal_index", mealIndex)
}

// NewNoCandidatesError creates an error for an empty candidate pool.
// Retryable once the catalog or dietary filter changes.
func NewNoCandidatesError(restrictions []string) *AppError {
	return NewAppError(
		CodeNoCandidates,
		"No candidate recipes",
		"The catalog has no recipes matching the dietary restrictions",
	).WithMetadata("dietary_restrictions", restrictions)
}

// NewNothingToUndoError creates an error for undo on an empty history.
// Benign empty-state, not a fault.
func NewNothingToUndoError(planID string) *AppError {
	return NewAppError(
		CodeNothingToUndo,
		"Nothing to undo",
		"The meal plan has no substitutions to undo",
	).WithMetadata("plan_id", planID)
}

// NewVersionConflictError creates an error for a stale optimistic commit
func NewVersionConflictError(planID string, expected int64) *AppError {
	return NewAppError(
		CodeVersionConflict,
		"Plan version conflict",
		"The meal plan was modified by a concurrent operation",
	).WithMetadata("plan_id", planID).WithMetadata("expected_version", expected)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
