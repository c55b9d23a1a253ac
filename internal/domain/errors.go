package domain

import (
	"errors"
	"strings"
)

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidPhone    = errors.New("phone number must be at least 10 digits")
	ErrFeesPaidNotBool = errors.New("fees_paid must be a boolean value")

	// ErrTelegramSend classifies any failure of the outbound Telegram calls.
	// The wrapped detail is logged server-side and never returned to callers.
	ErrTelegramSend = errors.New("telegram send failed")
)

// MissingFieldsError reports every required key absent from a submission.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is a caller-input error (HTTP 400).
func IsValidation(err error) bool {
	var mf *MissingFieldsError
	return errors.As(err, &mf) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrFeesPaidNotBool)
}
