package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"size:20;index" json:"role"`

	Orders     []Order    `gorm:"foreignKey:UserID" json:"-"`
	Deliveries []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartLines  []CartLine `json:"-"`
}

func (u *User) IsManager() bool      { return u.Role == RoleManager }
func (u *User) IsCustomer() bool     { return u.Role == RoleCustomer }
func (u *User) IsDeliveryCrew() bool { return u.Role == RoleDeliveryCrew }
