package repository

import (
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmailOrUsername(email, username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count, err
}

// SetRole is the single write path for a user's role.
func (r *UserRepository) SetRole(userID uint, role entity.Role) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("role", role).Error
}

func (r *UserRepository) ListByRole(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Order("id").Find(&users).Error
	return users, err
}
