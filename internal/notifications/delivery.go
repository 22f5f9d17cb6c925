package notifications

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Sender performs the actual delivery of an email.
type Sender interface {
	Send(email Email) error
}

// DeliveryHandler decodes queued emails and delivers them with a Sender,
// logging every outcome. The HTTP caller never learns the result, so the log
// is the only place delivery failures show up.
type DeliveryHandler struct {
	sender Sender
	logger *zap.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(sender Sender, logger *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{sender: sender, logger: logger.Named("notifier")}
}

// Handle processes one queued message body. A malformed body is dropped
// with an error log; a delivery failure is returned so the message can be
// requeued.
func (h *DeliveryHandler) Handle(body []byte) error {
	var email Email
	if err := json.Unmarshal(body, &email); err != nil {
		h.logger.Error("Dropping malformed email message", zap.Error(err))
		return nil
	}

	if err := h.sender.Send(email); err != nil {
		h.logger.Warn("Email delivery failed",
			zap.String("listing_id", email.ListingID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to deliver email: %w", err)
	}

	h.logger.Info("Email delivered", zap.String("listing_id", email.ListingID))
	return nil
}

// LogSender stands in for a mail server by logging each message envelope.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail")}
}

// Send logs the envelope of email.
func (s *LogSender) Send(email Email) error {
	if email.To == "" {
		return fmt.Errorf("email has no recipient")
	}
	s.logger.Info("Sending email", zap.String("subject", email.Subject), zap.String("from", email.From))
	return nil
}
