package repositories

import (
	"context"
	"fmt"

	"rvclassifieds/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMConsentRepository is a GORM implementation of ConsentRepository.
type GORMConsentRepository struct {
	db *gorm.DB
}

// NewGORMConsentRepository creates a new instance of GORMConsentRepository.
func NewGORMConsentRepository(db *gorm.DB) *GORMConsentRepository {
	return &GORMConsentRepository{db: db}
}

// GetByUserID returns the stored consent of a user.
func (r *GORMConsentRepository) GetByUserID(ctx context.Context, userID string) (*models.ConsentRecord, error) {
	var record models.ConsentRecord
	if err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get consent for user %s: %w", userID, translate(err))
	}
	return &record, nil
}

// Upsert inserts the record or replaces the existing one for the same user.
func (r *GORMConsentRepository) Upsert(ctx context.Context, record *models.ConsentRecord) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to store consent for user %s: %w", record.UserID, err)
	}
	return nil
}

// GORMCorrectionRepository is a GORM implementation of CorrectionRepository.
type GORMCorrectionRepository struct {
	db *gorm.DB
}

// NewGORMCorrectionRepository creates a new instance of GORMCorrectionRepository.
func NewGORMCorrectionRepository(db *gorm.DB) *GORMCorrectionRepository {
	return &GORMCorrectionRepository{db: db}
}

// Create appends a correction request.
func (r *GORMCorrectionRepository) Create(ctx context.Context, req *models.CorrectionRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to log correction request: %w", err)
	}
	return nil
}
