package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rvclassifieds/internal/database"
	"rvclassifieds/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMListingRepository is a GORM implementation of ListingRepository.
type GORMListingRepository struct {
	db *gorm.DB
}

// NewGORMListingRepository creates a new instance of GORMListingRepository.
func NewGORMListingRepository(db *gorm.DB) *GORMListingRepository {
	return &GORMListingRepository{
		db: db,
	}
}

// Create creates a new listing in the database.
func (r *GORMListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", translate(err))
	}
	return nil
}

// GetActiveByID retrieves an active listing by its ID.
func (r *GORMListingRepository) GetActiveByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).First(&listing, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", id, translate(err))
	}
	return &listing, nil
}

// GetOwned retrieves a listing by ID restricted to its owner.
func (r *GORMListingRepository) GetOwned(ctx context.Context, id, sellerID string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).First(&listing, "id = ? AND seller_id = ?", id, sellerID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s for seller: %w", id, translate(err))
	}
	return &listing, nil
}

// Search returns active listings matching the filter, newest first.
func (r *GORMListingRepository) Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	q := r.db.WithContext(ctx).Model(&models.Listing{}).Where("is_active = ?", true)

	if filter.VehicleType != "" {
		q = q.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		q = q.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		q = q.Where("year <= ?", *filter.MaxYear)
	}
	if filter.SearchText != "" {
		pattern := "%" + escapeLike(filter.SearchText) + "%"
		q = q.Where(searchClause(r.db.Dialector.Name()), pattern, pattern, pattern, pattern)
	}

	var listings []models.Listing
	err := q.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	return listings, nil
}

// ListBySeller returns all listings of a seller, active or not, newest first.
func (r *GORMListingRepository) ListBySeller(ctx context.Context, sellerID string, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings for seller %s: %w", sellerID, err)
	}
	return listings, nil
}

// Update writes every column of an existing listing.
func (r *GORMListingRepository) Update(ctx context.Context, listing *models.Listing) error {
	res := r.db.WithContext(ctx).Model(listing).Select("*").Omit("created_at").Updates(listing)
	if res.Error != nil {
		return fmt.Errorf("failed to update listing: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("listing with ID %s not found for update: %w", listing.ID, ErrRecordNotFound)
	}
	return nil
}

// SoftDelete marks a listing inactive without removing the row.
func (r *GORMListingRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Listing{}).Where("id = ?", id).Updates(map[string]any{
		"is_active":  false,
		"deleted_at": at,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("listing with ID %s not found for deletion: %w", id, ErrRecordNotFound)
	}
	return nil
}

// CountActive counts active listings.
func (r *GORMListingRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Listing{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// CountActiveByVehicleType groups active listings by category.
func (r *GORMListingRepository) CountActiveByVehicleType(ctx context.Context) ([]models.VehicleCount, error) {
	var counts []models.VehicleCount
	err := r.db.WithContext(ctx).Model(&models.Listing{}).
		Select("vehicle_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("vehicle_type").
		Order("vehicle_type").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count listings by vehicle type: %w", err)
	}
	return counts, nil
}

// AnonymizeBySeller deactivates and anonymizes all listings of a seller.
// Zero matching rows is not an error.
func (r *GORMListingRepository) AnonymizeBySeller(ctx context.Context, sellerID string, a SellerAnonymization) error {
	err := r.db.WithContext(ctx).Model(&models.Listing{}).Where("seller_id = ?", sellerID).Updates(map[string]any{
		"is_active":    false,
		"deleted_at":   a.DeletedAt,
		"seller_name":  a.SellerName,
		"seller_email": a.SellerEmail,
		"seller_phone": nil,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to anonymize listings of seller %s: %w", sellerID, err)
	}
	return nil
}

// searchClause matches one pattern against every searchable column. Both
// sides are folded by the same function so matching is case-insensitive for
// non-ASCII text too.
func searchClause(dialect string) string {
	pattern := database.LowerExpr(dialect, "?")
	conds := make([]string, 0, len(searchColumns))
	for _, col := range searchColumns {
		conds = append(conds, database.LowerExpr(dialect, col)+" LIKE "+pattern+` ESCAPE '\'`)
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

var searchColumns = []string{"title", "description", "make", "model"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
