package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// public reference shown to customers and couriers
	Number string `gorm:"uniqueIndex;size:36;not null" json:"number"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	State OrderState `gorm:"size:16;not null;default:PLACED;index" json:"state"`

	// fixed at placement time, never recomputed
	Total decimal.Decimal `gorm:"type:decimal(8,2)" json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}
