package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) SetTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total", total).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForCrew(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("delivery_crew_id = ?", crewID).
		Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateGuarded applies a transition only while the order is not delivered.
// The rows-affected result tells the caller whether the guard held, which
// keeps the terminal rule intact under concurrent requests.
func (r *OrderRepository) UpdateGuarded(tx *gorm.DB, orderID uint, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND state <> ?", orderID, entity.StateDelivered).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// Delete removes the order and its items in one transaction.
func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}
