package configs

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nazex2000/LittleLemon/entity"
)

// SeedManager creates the first manager account so role administration has a
// starting point. Skipped unless MANAGER_EMAIL/MANAGER_PASSWORD are set.
func SeedManager() error {
	email := getEnv("MANAGER_EMAIL", "")
	pass := getEnv("MANAGER_PASSWORD", "")
	if email == "" || pass == "" {
		logrus.Info("skip seeding manager: missing MANAGER_EMAIL/MANAGER_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.WithField("email", email).Info("manager already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := entity.User{
		Username: getEnv("MANAGER_USERNAME", "manager"),
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleManager,
	}
	return db.Create(&manager).Error
}
