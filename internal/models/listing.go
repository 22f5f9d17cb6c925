package models

import "time"

// Location is where a vehicle can be viewed.
type Location struct {
	Address   string  `json:"address" validate:"required,max=500"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Listing is a vehicle offered for sale. The seller fields are a snapshot of
// the owning user taken on every write.
type Listing struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Price       float64    `json:"price" gorm:"index;not null"`
	VehicleType string     `json:"vehicle_type" gorm:"index;type:varchar(20);not null"`
	Make        string     `json:"make" gorm:"type:varchar(100)"`
	Model       string     `json:"model" gorm:"type:varchar(100)"`
	Year        int        `json:"year"`
	Mileage     *int       `json:"mileage"`
	Length      *float64   `json:"length"` // meters
	FuelType    *string    `json:"fuel_type" gorm:"type:varchar(50)"`
	Location    Location   `json:"location" gorm:"serializer:json"`
	Images      []string   `json:"images" gorm:"serializer:json"` // base64 payloads
	SellerID    string     `json:"seller_id" gorm:"index;type:varchar(36);not null"`
	SellerName  string     `json:"seller_name" gorm:"type:varchar(255)"`
	SellerEmail string     `json:"seller_email" gorm:"type:varchar(255)"`
	SellerPhone *string    `json:"seller_phone" gorm:"type:varchar(50)"`
	ShowPhone   bool       `json:"show_phone"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"index;not null"`
}

// ListingInput holds the caller-settable listing fields. Seller fields are
// deliberately absent so they cannot be supplied by the client.
type ListingInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	VehicleType string    `json:"vehicle_type" validate:"required"`
	Make        string    `json:"make" validate:"required,max=100"`
	Model       string    `json:"model" validate:"required,max=100"`
	Year        int       `json:"year" validate:"required,gte=1900,lte=2100"`
	Mileage     *int      `json:"mileage" validate:"omitempty,gte=0"`
	Length      *float64  `json:"length" validate:"omitempty,gt=0"`
	FuelType    *string   `json:"fuel_type" validate:"omitempty,max=50"`
	Location    *Location `json:"location" validate:"required"`
	Images      []string  `json:"images" validate:"max=20"`
	ShowPhone   bool      `json:"show_phone"`
}

// ListingFilter narrows a listing search. Nil pointers and empty strings mean
// "no constraint".
type ListingFilter struct {
	VehicleType string
	MinPrice    *float64
	MaxPrice    *float64
	MinYear     *int
	MaxYear     *int
	SearchText  string
	Skip        int
	Limit       int
}

// VehicleCount is one row of the per-category breakdown.
type VehicleCount struct {
	VehicleType string `json:"vehicle_type"`
	Count       int64  `json:"count"`
}

// Stats summarizes the marketplace.
type Stats struct {
	TotalListings int64          `json:"total_listings"`
	TotalUsers    int64          `json:"total_users"`
	VehicleCounts []VehicleCount `json:"vehicle_counts"`
}

// ContactMessage is a buyer's inquiry relayed to a seller.
type ContactMessage struct {
	ListingID   string `json:"listing_id" validate:"required"`
	SenderName  string `json:"sender_name" validate:"required,max=255"`
	SenderEmail string `json:"sender_email" validate:"required,email"`
	Message     string `json:"message" validate:"required,max=5000"`
}
