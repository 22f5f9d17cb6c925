package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Stores groups the repositories bound to one database handle, which may be
// a transaction.
type Stores struct {
	Users       UserRepository
	Listings    ListingRepository
	Consents    ConsentRepository
	Corrections CorrectionRepository
}

// NewGORMStores builds every GORM repository on db.
func NewGORMStores(db *gorm.DB) Stores {
	return Stores{
		Users:       NewGORMUserRepository(db),
		Listings:    NewGORMListingRepository(db),
		Consents:    NewGORMConsentRepository(db),
		Corrections: NewGORMCorrectionRepository(db),
	}
}

// TxManager runs a function against repositories sharing one transaction.
type TxManager interface {
	Transaction(ctx context.Context, fn func(stores Stores) error) error
}

// GORMTxManager is a GORM implementation of TxManager.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (m *GORMTxManager) Transaction(ctx context.Context, fn func(stores Stores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStores(tx))
	})
}
