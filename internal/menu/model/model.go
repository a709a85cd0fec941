package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is one dish on an owner's menu. OwnerID is the authenticated
// principal that created it; all queries are scoped by it.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"      json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Item) TableName() string { return "menu_items" }

// ItemView is an Item plus the base64-encoded image body, resolved
// best-effort at list time.
type ItemView struct {
	Item
	ImageBase64 *string `json:"image_base64"`
}
