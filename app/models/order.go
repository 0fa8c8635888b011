package models

import "time"

// Recognised order statuses. Status updates are accepted verbatim and
// are not validated against this list or any transition order.
const (
	StatusPlaced    = "Placed"
	StatusPreparing = "Preparing"
	StatusCompleted = "Completed"
)

// Order is an immutable purchase record. SweetName, Unit and UnitPrice
// are snapshots taken at purchase time; only Status is ever updated,
// and orders are never deleted.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	SweetID    uint      `gorm:"not null" json:"sweetId"`
	SweetName  string    `gorm:"size:255;not null" json:"sweetName"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Unit       string    `gorm:"size:50;not null;default:nos" json:"unit"`
	UnitPrice  float64   `gorm:"not null" json:"unitPrice"`
	TotalPrice float64   `gorm:"not null" json:"totalPrice"`
	Status     string    `gorm:"size:50;not null;default:Placed" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
