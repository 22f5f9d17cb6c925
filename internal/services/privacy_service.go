package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DeletedUserName replaces the name of a deleted account everywhere.
	DeletedUserName = "Deleted user"
	// DeletedSellerEmail replaces the seller email on listings of a deleted account.
	DeletedSellerEmail = "deleted@deleted.local"

	maxExportListings    = 1000
	maxCorrectionKeys    = 50
	maxCorrectionBytes   = 16 << 10
	correctionAckMessage = "Data correction request submitted and will be reviewed"
)

// Consent categories.
const (
	ConsentNecessary  = "necessary"
	ConsentFunctional = "functional"
	ConsentAnalytics  = "analytics"
	ConsentMarketing  = "marketing"
)

// CorrectionReceipt acknowledges a logged correction request.
type CorrectionReceipt struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// PrivacyService implements the data-subject rights: export, correction,
// consent and account deletion.
type PrivacyService struct {
	users       repositories.UserRepository
	listings    repositories.ListingRepository
	consents    repositories.ConsentRepository
	corrections repositories.CorrectionRepository
	tx          repositories.TxManager
	logger      *zap.Logger
	now         func() time.Time
}

// NewPrivacyService creates a new PrivacyService.
func NewPrivacyService(stores repositories.Stores, tx repositories.TxManager, logger *zap.Logger) *PrivacyService {
	return &PrivacyService{
		users:       stores.Users,
		listings:    stores.Listings,
		consents:    stores.Consents,
		corrections: stores.Corrections,
		tx:          tx,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ExportData assembles everything stored about actor. The password hash is
// never part of the export.
func (s *PrivacyService) ExportData(ctx context.Context, actor *models.User) (*models.DataExport, error) {
	listings, err := s.listings.ListBySeller(ctx, actor.ID, maxExportListings)
	if err != nil {
		return nil, err
	}
	return &models.DataExport{
		UserInfo: models.UserInfo{
			ID:        actor.ID,
			Username:  actor.Username,
			Email:     actor.Email,
			FullName:  actor.FullName,
			Phone:     actor.Phone,
			CreatedAt: actor.CreatedAt,
			IsActive:  actor.IsActive,
		},
		Listings:   nonNil(listings),
		ExportDate: s.now(),
	}, nil
}

// RequestCorrection logs a free-form correction request as pending. The
// payload is not interpreted, only bounded in size.
func (s *PrivacyService) RequestCorrection(ctx context.Context, actor *models.User, payload map[string]any) (*CorrectionReceipt, error) {
	if len(payload) > maxCorrectionKeys {
		return nil, fmt.Errorf("%w: correction request has more than %d fields", ErrValidation, maxCorrectionKeys)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: correction request is not serializable", ErrValidation)
	}
	if len(raw) > maxCorrectionBytes {
		return nil, fmt.Errorf("%w: correction request exceeds %d bytes", ErrValidation, maxCorrectionBytes)
	}
	if payload == nil {
		payload = map[string]any{}
	}

	req := &models.CorrectionRequest{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		Payload:   payload,
		Timestamp: s.now(),
		Status:    models.CorrectionStatusPending,
	}
	if err := s.corrections.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("Data correction requested", zap.String("user_id", actor.ID), zap.String("request_id", req.ID))
	return &CorrectionReceipt{Message: correctionAckMessage, RequestID: req.ID}, nil
}

// GetConsent returns the stored consent of actor, or the default where only
// necessary processing is allowed.
func (s *PrivacyService) GetConsent(ctx context.Context, actor *models.User) (*models.ConsentRecord, error) {
	record, err := s.consents.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return &models.ConsentRecord{
				UserID:      actor.ID,
				Necessary:   true,
				LastUpdated: s.now(),
			}, nil
		}
		return nil, err
	}
	record.Necessary = true
	return record, nil
}

// SetConsent replaces the consent of actor. Missing or non-boolean
// categories become false; necessary is always true.
func (s *PrivacyService) SetConsent(ctx context.Context, actor *models.User, payload map[string]any) (*models.ConsentRecord, error) {
	record := &models.ConsentRecord{
		UserID:      actor.ID,
		Necessary:   true,
		Functional:  consentFlag(payload, ConsentFunctional),
		Analytics:   consentFlag(payload, ConsentAnalytics),
		Marketing:   consentFlag(payload, ConsentMarketing),
		LastUpdated: s.now(),
	}
	if err := s.consents.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteAccount anonymizes actor and deactivates and anonymizes all of their
// listings in one transaction. Running it again on an anonymized account
// converges to the same state.
func (s *PrivacyService) DeleteAccount(ctx context.Context, actor *models.User) error {
	deletedAt := s.now()

	err := s.tx.Transaction(ctx, func(stores repositories.Stores) error {
		if err := stores.Users.Anonymize(ctx, actor.ID, AnonymizedUser(actor.ID, deletedAt)); err != nil {
			return err
		}
		return stores.Listings.AnonymizeBySeller(ctx, actor.ID, repositories.SellerAnonymization{
			SellerName:  DeletedUserName,
			SellerEmail: DeletedSellerEmail,
			DeletedAt:   deletedAt,
		})
	})
	if err != nil {
		s.logger.Error("Account deletion failed", zap.String("user_id", actor.ID), zap.Error(err))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("Account deleted", zap.String("user_id", actor.ID))
	return nil
}

// AnonymizedUser derives the placeholder identity of a deleted user. The
// placeholders embed the ID so they never collide with other accounts.
func AnonymizedUser(id string, deletedAt time.Time) repositories.UserAnonymization {
	return repositories.UserAnonymization{
		Username:  "deleted_user_" + id,
		Email:     "deleted_" + id + "@deleted.local",
		FullName:  DeletedUserName,
		DeletedAt: deletedAt,
	}
}

func consentFlag(payload map[string]any, key string) bool {
	v, _ := payload[key].(bool)
	return v
}
