package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry sold by the store.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"size:100;index"`
	Type        string          `gorm:"size:100"`
	Color       string          `gorm:"size:50"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `gorm:"column:image_url;size:512"`
}

// TableName keeps the table name used by the existing catalog schema.
func (Product) TableName() string {
	return "product"
}
