package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/notifications"
	"rvclassifieds/internal/repositories"
	"rvclassifieds/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func contactMessage() models.ContactMessage {
	return models.ContactMessage{
		ListingID:   "listing-1",
		SenderName:  "Bob",
		SenderEmail: "bob@example.com",
		Message:     "Is it still available?",
	}
}

func TestContactService_ContactSeller(t *testing.T) {
	ctx := context.Background()
	listingRepo := new(MockListingRepository)
	notifier := new(MockNotifier)
	service := services.NewContactService(listingRepo, notifier, "noreply@rvclassifieds.com", zap.NewNop())

	listingRepo.On("GetActiveByID", ctx, "listing-1").Return(&models.Listing{
		ID:          "listing-1",
		Title:       "2019 Adria Altea",
		SellerEmail: "alice@example.com",
		IsActive:    true,
	}, nil).Once()

	var sent notifications.Email
	notifier.On("Notify", ctx, mock.AnythingOfType("notifications.Email")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(notifications.Email) }).
		Return(nil).Once()

	require.NoError(t, service.ContactSeller(ctx, contactMessage()))
	assert.Equal(t, "alice@example.com", sent.To)
	assert.Equal(t, "noreply@rvclassifieds.com", sent.From)
	assert.Equal(t, "bob@example.com", sent.ReplyTo)
	assert.Equal(t, "Inquiry about your 2019 Adria Altea", sent.Subject)
	assert.True(t, strings.Contains(sent.Body, "Is it still available?"))
	assert.True(t, strings.Contains(sent.Body, "Bob (bob@example.com)"))
	notifier.AssertExpectations(t)
}

func TestContactService_ContactSeller_ListingGone(t *testing.T) {
	ctx := context.Background()
	listingRepo := new(MockListingRepository)
	notifier := new(MockNotifier)
	service := services.NewContactService(listingRepo, notifier, "noreply@rvclassifieds.com", zap.NewNop())

	listingRepo.On("GetActiveByID", ctx, "listing-1").Return(nil, repositories.ErrRecordNotFound).Once()

	err := service.ContactSeller(ctx, contactMessage())
	assert.ErrorIs(t, err, services.ErrNotFound)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestContactService_ContactSeller_NotifierRefuses(t *testing.T) {
	ctx := context.Background()
	listingRepo := new(MockListingRepository)
	notifier := new(MockNotifier)
	service := services.NewContactService(listingRepo, notifier, "noreply@rvclassifieds.com", zap.NewNop())

	listingRepo.On("GetActiveByID", ctx, "listing-1").Return(&models.Listing{ID: "listing-1", Title: "Van"}, nil).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	err := service.ContactSeller(ctx, contactMessage())
	assert.ErrorIs(t, err, services.ErrNotify)
}
