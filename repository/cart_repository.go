package repository

import (
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartLine, error) {
	return r.Lines(r.DB, userID)
}

// Lines reads on the given handle so order placement can read the cart inside
// its own transaction.
func (r *CartRepository) Lines(db *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := db.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) Exists(userID, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.CartLine{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

func (r *CartRepository) Create(line *entity.CartLine) error {
	return r.DB.Create(line).Error
}

// Clear runs inside the caller's transaction during order placement.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartLine{}).Error
}
