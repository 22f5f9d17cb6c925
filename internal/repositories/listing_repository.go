package repositories

import (
	"context"
	"time"

	"rvclassifieds/internal/models"
)

// ListingRepository defines the interface for listing data access.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	// GetActiveByID returns the listing only while it is active.
	GetActiveByID(ctx context.Context, id string) (*models.Listing, error)
	// GetOwned returns the listing, active or not, when sellerID owns it.
	GetOwned(ctx context.Context, id, sellerID string) (*models.Listing, error)
	Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	ListBySeller(ctx context.Context, sellerID string, limit int) ([]models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	CountActive(ctx context.Context) (int64, error)
	CountActiveByVehicleType(ctx context.Context) ([]models.VehicleCount, error)
	// AnonymizeBySeller deactivates every listing of a seller and replaces the
	// seller snapshot with placeholders.
	AnonymizeBySeller(ctx context.Context, sellerID string, a SellerAnonymization) error
}

// SellerAnonymization holds the replacement seller snapshot for listings of
// a deleted account.
type SellerAnonymization struct {
	SellerName  string
	SellerEmail string
	DeletedAt   time.Time
}
