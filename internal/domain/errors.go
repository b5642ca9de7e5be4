package domain

import "errors"

// Common business errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrHasDependents = errors.New("resource has dependents")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrPersistence   = errors.New("persistence failure")
)

// AppError carries an HTTP status code alongside the message
type AppError struct {
	Code    int    // HTTP status code
	Message string // User-facing error message
	Err     error  // Original error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Convenience constructors for the common cases.
// Missing references resolve to 400 rather than 404: ids arrive in request
// bodies, so an unknown id is bad request data, not a bad route.
func NewValidationError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrInvalidInput}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrNotFound}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Code: 409, Message: msg, Err: ErrAlreadyExists}
}

func NewDependencyError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrHasDependents}
}

func NewPersistenceError(msg string, err error) *AppError {
	return &AppError{Code: 400, Message: msg, Err: errors.Join(ErrPersistence, err)}
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: 401, Message: msg, Err: ErrUnauthorized}
}
