package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	SKU       *string   `gorm:"type:varchar(60);uniqueIndex:uq_products_sku"`
	Price     float64   `gorm:"type:numeric(14,2);not null"`
	Category  string    `gorm:"type:varchar(80)"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
