package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/repositories"

	"github.com/google/uuid"
)

const (
	// DefaultSearchLimit applies when a search names no limit.
	DefaultSearchLimit = 20
	// MaxSearchLimit caps the page size of a search.
	MaxSearchLimit = 100
	// MaxOwnedListings caps the "my listings" view.
	MaxOwnedListings = 100
)

// ListingService handles business logic related to listings.
type ListingService struct {
	listings repositories.ListingRepository
	users    repositories.UserRepository
	now      func() time.Time
}

// NewListingService creates a new ListingService.
func NewListingService(listings repositories.ListingRepository, users repositories.UserRepository) *ListingService {
	return &ListingService{
		listings: listings,
		users:    users,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateListing stores a new active listing owned by actor.
func (s *ListingService) CreateListing(ctx context.Context, input models.ListingInput, actor *models.User) (*models.Listing, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		ID:        uuid.New().String(),
		CreatedAt: s.now(),
		IsActive:  true,
	}
	applyInput(listing, input)
	applySeller(listing, actor)

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// SearchListings returns active listings matching filter, newest first.
func (s *ListingService) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultSearchLimit
	case filter.Limit > MaxSearchLimit:
		filter.Limit = MaxSearchLimit
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return []models.Listing{}, nil
	}

	listings, err := s.listings.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return nonNil(listings), nil
}

// GetListing returns an active listing.
func (s *ListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := s.listings.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// ListOwned returns every listing of actor, including deleted ones.
func (s *ListingService) ListOwned(ctx context.Context, actor *models.User) ([]models.Listing, error) {
	listings, err := s.listings.ListBySeller(ctx, actor.ID, MaxOwnedListings)
	if err != nil {
		return nil, err
	}
	return nonNil(listings), nil
}

// UpdateListing replaces the mutable fields of a listing owned by actor. A
// listing owned by someone else is reported exactly like a missing one.
func (s *ListingService) UpdateListing(ctx context.Context, id string, input models.ListingInput, actor *models.User) (*models.Listing, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	listing, err := s.owned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	applyInput(listing, input)
	applySeller(listing, actor)
	updated := s.now()
	listing.UpdatedAt = &updated

	if err := s.listings.Update(ctx, listing); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// DeleteListing soft-deletes a listing owned by actor.
func (s *ListingService) DeleteListing(ctx context.Context, id string, actor *models.User) error {
	if _, err := s.owned(ctx, id, actor); err != nil {
		return err
	}
	if err := s.listings.SoftDelete(ctx, id, s.now()); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// VehicleTypes returns the category enumeration with display labels.
func (s *ListingService) VehicleTypes() []models.VehicleType {
	return models.VehicleTypes()
}

// Stats counts active listings and users and breaks listings down by category.
func (s *ListingService) Stats(ctx context.Context) (*models.Stats, error) {
	totalListings, err := s.listings.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.listings.CountActiveByVehicleType(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.VehicleCount{}
	}
	return &models.Stats{
		TotalListings: totalListings,
		TotalUsers:    totalUsers,
		VehicleCounts: counts,
	}, nil
}

func (s *ListingService) owned(ctx context.Context, id string, actor *models.User) (*models.Listing, error) {
	listing, err := s.listings.GetOwned(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func validateInput(in models.ListingInput) error {
	if !models.IsValidVehicleType(in.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrValidation, in.VehicleType)
	}
	if in.Location == nil {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	return nil
}

func applyInput(l *models.Listing, in models.ListingInput) {
	l.Title = in.Title
	l.Description = in.Description
	l.Price = in.Price
	l.VehicleType = in.VehicleType
	l.Make = in.Make
	l.Model = in.Model
	l.Year = in.Year
	l.Mileage = in.Mileage
	l.Length = in.Length
	l.FuelType = in.FuelType
	l.Location = *in.Location
	l.Images = in.Images
	if l.Images == nil {
		l.Images = []string{}
	}
	l.ShowPhone = in.ShowPhone
}

// applySeller copies the seller snapshot from the acting user.
func applySeller(l *models.Listing, actor *models.User) {
	l.SellerID = actor.ID
	l.SellerName = actor.FullName
	l.SellerEmail = actor.Email
	l.SellerPhone = actor.Phone
}

func nonNil(listings []models.Listing) []models.Listing {
	if listings == nil {
		return []models.Listing{}
	}
	return listings
}
