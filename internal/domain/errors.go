package domain

import "errors"

// Error kinds the HTTP edge maps onto status codes. Repos translate
// store-specific failures (e.g. MySQL 1062) into these before they
// leave the storage layer.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("unique constraint violated")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQuotaExceeded = errors.New("booking quota exceeded")
)

// ValidationError carries a user-facing message for a 400 response.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
