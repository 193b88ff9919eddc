package model

import (
	"time"

	"gorm.io/gorm"
)

// Address is a delivery address. Every address belongs to exactly one user
// and only the owning user may read or delete it.
type Address struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Label     string         `gorm:"size:100;not null" json:"label"` // "Casa", "Trabajo", ...
	Line1     string         `gorm:"not null" json:"line1"`
	Line2     string         `json:"line2"`
	City      string         `json:"city"`
	Province  string         `json:"province"`
	Reference string         `gorm:"type:text" json:"reference"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Address) TableName() string {
	return "addresses"
}
