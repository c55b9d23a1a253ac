package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notifyhub/registration-notifier/internal/domain"
)

// response is the envelope returned by every endpoint:
// {status, message, data?}.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, response{Status: "error", Message: msg})
}

// mapError translates domain errors to HTTP status codes.
// Validation detail is echoed to the caller; everything else gets a generic
// message so internal state never leaks.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTelegramSend):
		respondError(w, http.StatusBadGateway, "Failed to send notification to Telegram")
	default:
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
