package notifier

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/notifyhub/registration-notifier/internal/domain"
	"github.com/notifyhub/registration-notifier/internal/telegram"
)

// MetricHooks are optional callbacks the service invokes on outcomes.
// Keeping them as plain functions keeps this package free of prometheus
// imports; internal/metrics provides the real implementations.
type MetricHooks struct {
	OnSent       func(latency time.Duration)
	OnFailed     func()
	OnAdminAlert func()
}

// Service forwards registration submissions to the Telegram group chat and
// keeps the admin chat informed of successes and failures. It performs no
// retries: a failed group send is escalated to the admin chat once and the
// original error is surfaced to the caller.
type Service struct {
	sender  telegram.Sender
	groupID int64
	adminID int64
	logger  *zap.Logger
	hooks   MetricHooks
}

func New(sender telegram.Sender, groupID, adminID int64, logger *zap.Logger, hooks MetricHooks) *Service {
	return &Service{
		sender:  sender,
		groupID: groupID,
		adminID: adminID,
		logger:  logger,
		hooks:   hooks,
	}
}

// SendRegistration posts the formatted request with its action buttons to
// the group chat, then a plain confirmation to the admin chat. Both calls
// block; the handler does not respond until they complete. On any failure
// the admin chat is alerted best-effort and an error wrapping
// domain.ErrTelegramSend is returned. The generated request id is returned
// on success; it is decorative and never stored.
func (s *Service) SendRegistration(ctx context.Context, reg domain.Registration) (string, error) {
	requestID := domain.NewRequestID()
	start := time.Now()

	msg := telegram.Message{
		Text:      FormatRegistration(reg, requestID),
		ParseMode: telegram.ModeMarkdown,
		Buttons:   ActionButtons(reg.Phone),
	}
	if err := s.sender.Send(ctx, s.groupID, msg); err != nil {
		return "", s.escalate(ctx, requestID, "group send", err)
	}

	confirm := telegram.Message{
		Text: fmt.Sprintf("ℹ️ New registration request from %s received and forwarded to group.", reg.Name),
	}
	if err := s.sender.Send(ctx, s.adminID, confirm); err != nil {
		return "", s.escalate(ctx, requestID, "admin confirmation", err)
	}

	if s.hooks.OnSent != nil {
		s.hooks.OnSent(time.Since(start))
	}
	s.logger.Info("registration forwarded",
		zap.String("request_id", requestID),
		zap.String("phone", reg.Phone),
	)
	return requestID, nil
}

// escalate logs the primary failure, alerts the admin chat, and returns the
// classified error. Exactly one escalation per failure, no retry.
func (s *Service) escalate(ctx context.Context, requestID, stage string, err error) error {
	s.logger.Error("telegram api error",
		zap.String("request_id", requestID),
		zap.String("stage", stage),
		zap.Error(err),
	)
	if s.hooks.OnFailed != nil {
		s.hooks.OnFailed()
	}
	s.notifyAdminError(ctx, fmt.Sprintf("Failed to send message: %v", err))
	return fmt.Errorf("%w: %s: %v", domain.ErrTelegramSend, stage, err)
}

// notifyAdminError sends a formatted alert to the admin chat. Best-effort:
// a failure here is logged and swallowed, never propagated.
func (s *Service) notifyAdminError(ctx context.Context, detail string) {
	alert := telegram.Message{
		Text:      "🚨 *System Error*\n\n" + detail,
		ParseMode: telegram.ModeMarkdown,
	}
	if err := s.sender.Send(ctx, s.adminID, alert); err != nil {
		s.logger.Error("failed to notify admin", zap.Error(err))
		return
	}
	if s.hooks.OnAdminAlert != nil {
		s.hooks.OnAdminAlert()
	}
}
