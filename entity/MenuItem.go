package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu items delete for real (no soft delete) so a deleted title can be
// reused; order items referencing one protect it from deletion instead.
type MenuItem struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title    string          `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2);index" json:"price"`
	Featured bool            `gorm:"default:false" json:"featured"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
