package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/notifyhub/registration-notifier/internal/api/middleware"
	"github.com/notifyhub/registration-notifier/internal/domain"
	"github.com/notifyhub/registration-notifier/internal/notifier"
)

// NotifyHandler handles the registration submission endpoint.
type NotifyHandler struct {
	svc    *notifier.Service
	logger *zap.Logger
}

func NewNotifyHandler(svc *notifier.Service, logger *zap.Logger) *NotifyHandler {
	return &NotifyHandler{svc: svc, logger: logger}
}

// Notify handles POST /notify/
//
// @Summary     Forward a registration request to the Telegram group
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       body  body      domain.Registration  true  "Registration payload"
// @Success     200   {object}  map[string]any
// @Failure     400   {object}  map[string]string
// @Failure     502   {object}  map[string]string
// @Router      /notify/ [post]
func (h *NotifyHandler) Notify(w http.ResponseWriter, r *http.Request) {
	// Decoded as a map, not a struct: validation must tell a missing key
	// apart from a mistyped value.
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reg, err := domain.ParseRegistration(raw)
	if err != nil {
		h.logger.Warn("validation failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	// Blocks until the whole outbound sequence completes or fails.
	if _, err := h.svc.SendRegistration(r.Context(), reg); err != nil {
		h.logger.Error("send registration failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response{
		Status:  "success",
		Message: "Registration request sent successfully!",
		Data: map[string]any{
			"name":      reg.Name,
			"phone":     reg.Phone,
			"fees_paid": reg.FeesPaid,
		},
	})
}
