package models

import "time"

// Correction request statuses.
const (
	CorrectionStatusPending = "pending"
)

// ConsentRecord stores a user's cookie/processing consent. Necessary is
// always true.
type ConsentRecord struct {
	UserID      string    `json:"-" gorm:"primaryKey;type:varchar(36)"`
	Necessary   bool      `json:"necessary"`
	Functional  bool      `json:"functional"`
	Analytics   bool      `json:"analytics"`
	Marketing   bool      `json:"marketing"`
	LastUpdated time.Time `json:"last_updated"`
}

// TableName overrides the default table name.
func (ConsentRecord) TableName() string {
	return "user_consent"
}

// CorrectionRequest is an append-only log entry asking for personal data to
// be corrected.
type CorrectionRequest struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string         `json:"user_id" gorm:"index;type:varchar(36);not null"`
	Payload   map[string]any `json:"request" gorm:"serializer:json"`
	Timestamp time.Time      `json:"timestamp"`
	Status    string         `json:"status" gorm:"type:varchar(20);not null"`
}

// TableName overrides the default table name.
func (CorrectionRequest) TableName() string {
	return "data_correction_requests"
}

// UserInfo is the non-secret part of a user included in a data export.
type UserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// DataExport is the portable copy of everything stored about a user.
type DataExport struct {
	UserInfo   UserInfo  `json:"user_info"`
	Listings   []Listing `json:"listings"`
	ExportDate time.Time `json:"export_date"`
}
