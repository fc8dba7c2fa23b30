package entity

import (
	"time"
)

// Categories delete for real (no soft delete): a removed slug must be free
// for reuse, and the unique index only ever covers live rows.
type Category struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Slug string `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Name string `gorm:"size:50;not null" json:"name"`

	// menu items keep the category alive: delete is protected, not cascaded
	MenuItems []MenuItem `json:"-"`
}
