package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()
	var cat entity.Category
	err := db.Where("slug = ?", "mains").First(&cat).Error
	if err != nil {
		cat = entity.Category{Slug: "mains", Name: "Mains"}
		require.NoError(t, db.Create(&cat).Error)
	}
	m := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}
