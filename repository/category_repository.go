package repository

import (
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

// MenuItemCount backs the protect-on-delete rule.
func (r *CategoryRepository) MenuItemCount(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
