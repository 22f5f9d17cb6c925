package repositories

import (
	"context"
	"time"

	"rvclassifieds/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// ExistsByUsernameOrEmail checks all records, active or not.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	Anonymize(ctx context.Context, id string, a UserAnonymization) error
}

// UserAnonymization holds the replacement values written over a deleted
// user's personal data.
type UserAnonymization struct {
	Username  string
	Email     string
	FullName  string
	DeletedAt time.Time
}
