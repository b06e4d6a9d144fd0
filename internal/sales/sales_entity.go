package sales

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReceiptNo   string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_sales_receipt_no"`
	ExecutiveID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Denormalized from the executive's user row at record time so team
	// queries never need a join through users.
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Day-normalized sale date.
	SaleDate time.Time `gorm:"type:date;not null;index"`
	// Sum of quantity x price_per_unit across items, computed once at
	// record time and never recomputed.
	Amount   float64 `gorm:"type:numeric(14,2);not null"`
	Location string  `gorm:"type:varchar(150);not null"`
	Remarks  string  `gorm:"type:text"`

	Items []SaleItem `gorm:"foreignKey:SaleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sale) TableName() string {
	return "sales"
}

type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	// Unit price captured at sale time; later product price changes never
	// touch historical amounts.
	PricePerUnit float64 `gorm:"type:numeric(14,2);not null"`

	CreatedAt time.Time
}

func (SaleItem) TableName() string {
	return "sale_items"
}
