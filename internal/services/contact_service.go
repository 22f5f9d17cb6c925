package services

import (
	"context"
	"errors"
	"fmt"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/notifications"
	"rvclassifieds/internal/repositories"

	"go.uber.org/zap"
)

// ContactService relays buyer inquiries to sellers.
type ContactService struct {
	listings repositories.ListingRepository
	notifier notifications.Notifier
	from     string
	logger   *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(listings repositories.ListingRepository, notifier notifications.Notifier, from string, logger *zap.Logger) *ContactService {
	return &ContactService{
		listings: listings,
		notifier: notifier,
		from:     from,
		logger:   logger,
	}
}

// ContactSeller mails msg to the seller of an active listing. Delivery is
// fire-and-forget: only an explicit refusal by the notifier fails the call.
func (s *ContactService) ContactSeller(ctx context.Context, msg models.ContactMessage) error {
	listing, err := s.listings.GetActiveByID(ctx, msg.ListingID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	email := notifications.Email{
		To:      listing.SellerEmail,
		From:    s.from,
		ReplyTo: msg.SenderEmail,
		Subject: fmt.Sprintf("Inquiry about your %s", listing.Title),
		Body: fmt.Sprintf(
			"You have received an inquiry about your listing: %s\n\nFrom: %s (%s)\n\nMessage:\n%s\n\nYou can reply directly to this email to respond to the inquiry.\n",
			listing.Title, msg.SenderName, msg.SenderEmail, msg.Message,
		),
		ListingID: listing.ID,
	}

	if err := s.notifier.Notify(ctx, email); err != nil {
		s.logger.Error("Seller notification refused", zap.String("listing_id", listing.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}
	return nil
}
