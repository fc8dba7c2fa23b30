package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is the immutable copy of a cart line taken at placement.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_item;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(8,2)" json:"total"`
}
