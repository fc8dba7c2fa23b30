package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

// SetupDatabase migrates the schema. Order matters only for readability;
// FK policies (protect on Category/MenuItem, cascade on Order/CartLine)
// live on the entity tags.
func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
