package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Registration is the single transient entity of the service. It is built
// from a validated submission, forwarded to Telegram, and discarded; nothing
// outlives the request/response cycle.
type Registration struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	FeesPaid bool   `json:"fees_paid"`
	Email    string `json:"email,omitempty"`
	Course   string `json:"course,omitempty"`
}

// ParseRegistration validates a decoded JSON body and extracts a Registration.
//
// The input is the raw key-value map rather than a typed struct because the
// contract distinguishes "key absent" (missing-field error naming every
// missing key) from "key present but of the wrong type" (a type error for
// that field). Optional fields default: fees_paid=false, email/course empty.
func ParseRegistration(raw map[string]any) (Registration, error) {
	var missing []string
	nameVal, hasName := raw["name"]
	if !hasName {
		missing = append(missing, "name")
	}
	phoneVal, hasPhone := raw["phone"]
	if !hasPhone {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return Registration{}, &MissingFieldsError{Fields: missing}
	}

	if v, ok := raw["fees_paid"]; ok {
		if _, isBool := v.(bool); !isBool {
			return Registration{}, ErrFeesPaidNotBool
		}
	}

	name, _ := nameVal.(string)
	if strings.TrimSpace(name) == "" {
		return Registration{}, ErrEmptyName
	}

	// A non-string phone fails the digit check below (phone stays "").
	phone, _ := phoneVal.(string)
	if len(phone) < 10 || !allDigits(phone) {
		return Registration{}, ErrInvalidPhone
	}

	reg := Registration{Name: name, Phone: phone}
	if v, ok := raw["fees_paid"].(bool); ok {
		reg.FeesPaid = v
	}
	if v, ok := raw["email"].(string); ok {
		reg.Email = v
	}
	if v, ok := raw["course"].(string); ok {
		reg.Course = v
	}
	return reg, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewRequestID returns a short display identifier: the first 8 characters of
// a UUIDv4, uppercased. Generated fresh per send attempt, never persisted and
// never matched against button presses.
func NewRequestID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
