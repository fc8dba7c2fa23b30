package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one pending selection. A user holds at most one line per menu
// item; the composite unique index turns concurrent duplicates into a
// constraint error instead of a silent second row. Lines delete for real
// (no soft delete) so clearing the cart frees the (user, item) pair for the
// next add.
type CartLine struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `json:"quantity"`
	// price at the moment the line was added, never re-read from MenuItem
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
}

func (l *CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
