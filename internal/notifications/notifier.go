// Package notifications carries outbound email from the request path to the
// mail transport.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// EmailQueue is the durable queue outbound email is published to.
const EmailQueue = "email_queue"

// Email is one outbound message.
type Email struct {
	To        string `json:"to"`
	From      string `json:"from"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	ListingID string `json:"listing_id,omitempty"`
}

// Notifier hands an email to a delivery channel. A nil error means the
// message was accepted, not that it was delivered.
type Notifier interface {
	Notify(ctx context.Context, email Email) error
}

// Publisher is the subset of the broker client used for publishing.
type Publisher interface {
	Publish(queue string, body []byte) error
}

// QueueNotifier publishes emails to the broker for asynchronous delivery.
type QueueNotifier struct {
	publisher Publisher
	logger    *zap.Logger
}

// NewQueueNotifier creates a new QueueNotifier.
func NewQueueNotifier(publisher Publisher, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{publisher: publisher, logger: logger.Named("notifier")}
}

// Notify publishes email to EmailQueue.
func (n *QueueNotifier) Notify(_ context.Context, email Email) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}
	if err := n.publisher.Publish(EmailQueue, body); err != nil {
		return fmt.Errorf("failed to queue email: %w", err)
	}
	n.logger.Info("Email queued", zap.String("listing_id", email.ListingID))
	return nil
}

// LogNotifier records emails in the log instead of sending them. It is used
// when no broker is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notifier")}
}

// Notify logs the email envelope. Bodies are left out of the log.
func (n *LogNotifier) Notify(_ context.Context, email Email) error {
	n.logger.Info("Email accepted for delivery",
		zap.String("listing_id", email.ListingID),
		zap.String("subject", email.Subject),
		zap.String("delivery", "log-only"),
	)
	return nil
}
