package repositories

import (
	"context"

	"rvclassifieds/internal/models"
)

// ConsentRepository stores one consent record per user.
type ConsentRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.ConsentRecord, error)
	Upsert(ctx context.Context, record *models.ConsentRecord) error
}

// CorrectionRepository is the append-only log of data correction requests.
type CorrectionRepository interface {
	Create(ctx context.Context, req *models.CorrectionRequest) error
}
