package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrProtectedUser      = errors.New("built-in user cannot be deleted")
	ErrStudentNotLinked   = errors.New("user is not linked to a student record")
	ErrInvalidTokenFormat = errors.New("invalid token format")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrRollNoAlreadyExists    = errors.New("roll number already exists")
	ErrStudentHasApplications = errors.New("student has applications and cannot be deleted")
)

// Opportunity errors
var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrOfficeNotFound      = errors.New("placement office not found")
	ErrOfficeHasPostings   = errors.New("placement office has opportunities and cannot be deleted")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("student has already applied to this opportunity")
	ErrDeadlinePassed      = errors.New("application deadline has passed")
	ErrCGPABelowMinimum    = errors.New("student CGPA is below the opportunity minimum")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// Interview errors
var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrInvalidResult     = errors.New("invalid interview result")
)

// Assessment and announcement errors
var (
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a resource-not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
