package models

import "time"

// CartItem is one line in a user's cart. SweetName, Price and Unit are
// snapshots taken when the line is created; they are intentionally not
// refreshed when the catalogue changes. At most one line exists per
// (UserID, SweetID) pair; re-adding a sweet merges into the line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	SweetID   uint      `gorm:"not null" json:"sweetId"`
	SweetName string    `gorm:"size:255;not null" json:"sweetName"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"size:50;not null;default:nos" json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
