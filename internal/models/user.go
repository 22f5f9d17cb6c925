package models

import "time"

// User represents a registered marketplace user.
type User struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username       string     `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	FullName       string     `json:"full_name" gorm:"type:varchar(255)"`
	Phone          *string    `json:"phone" gorm:"type:varchar(50)"`
	HashedPassword string     `json:"-" gorm:"type:varchar(255);not null"` // never serialized
	CreatedAt      time.Time  `json:"created_at"`
	IsActive       bool       `json:"is_active" gorm:"not null"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	FullName string  `json:"full_name" validate:"required,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
