package models

import "time"

// DefaultUnit is the quantity unit applied when none is given.
const DefaultUnit = "nos"

// Sweet is a catalogue product. Quantity is mutated by the inventory
// service (purchase/restock) and by direct admin updates. Deletion is a
// hard delete with no referential check against cart or order rows;
// those carry their own snapshots.
type Sweet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Category  string    `gorm:"size:255;not null;index" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"size:50;not null;default:nos" json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
