package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a restaurant owner record. Email is unique case-insensitively:
// it is lowercased before storage and lookup.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex"`
	PasswordHash   string
	RestaurantName string
	Address        string
	PhoneNumber    string
	IsVerified     bool
	CreatedAt      time.Time
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	AccountID   uuid.UUID
}
