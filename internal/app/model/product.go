package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // minor currency unit
	ImageURL    string         `json:"image_url"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Extras   []ProductExtra `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"extras,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductExtra is an optional, priced add-on selectable per product.
// Codes are unique within a product.
type ProductExtra struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"not null;index;uniqueIndex:idx_product_extra_code" json:"product_id"`
	Code      string `gorm:"not null;uniqueIndex:idx_product_extra_code" json:"code"`
	Label     string `gorm:"not null" json:"label"`
	Surcharge int64  `gorm:"default:0" json:"surcharge"` // minor currency unit

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (ProductExtra) TableName() string {
	return "product_extras"
}
