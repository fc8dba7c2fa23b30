package repository

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuFilter carries everything the listing endpoint accepts.
type MenuFilter struct {
	CategoryID *uint
	PriceFrom  *decimal.Decimal
	PriceTo    *decimal.Decimal
	Search     string
	Ordering   []string
	Page       int
	PerPage    int
}

type MenuPage struct {
	Items   []entity.MenuItem `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"perpage"`
}

// orderColumns whitelists orderable fields; anything else is ignored.
var orderColumns = map[string]string{
	"id":       "menu_items.id",
	"title":    "menu_items.title",
	"price":    "menu_items.price",
	"featured": "menu_items.featured",
	"category": "menu_items.category_id",
}

func (r *MenuRepository) List(f MenuFilter) (*MenuPage, error) {
	q := r.DB.Model(&entity.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id")

	if f.CategoryID != nil {
		q = q.Where("menu_items.category_id = ?", *f.CategoryID)
	}
	if f.PriceFrom != nil {
		q = q.Where("menu_items.price >= ?", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		q = q.Where("menu_items.price <= ?", *f.PriceTo)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("menu_items.title LIKE ? OR categories.name LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	for _, field := range f.Ordering {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		col, ok := orderColumns[strings.TrimPrefix(field, "-")]
		if !ok {
			continue
		}
		if desc {
			col += " DESC"
		}
		q = q.Order(col)
	}
	q = q.Order("menu_items.id")

	perPage := f.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	// out-of-range pages clamp to the last page instead of erroring
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage > 0 && page > lastPage {
		page = lastPage
	}

	var items []entity.MenuItem
	err := q.Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return &MenuPage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CountByTitle supports the unique-title rule; excludeID skips the row being updated.
func (r *MenuRepository) CountByTitle(title string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.MenuItem{}).Where("title = ?", title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

// OrderItemCount backs the protect-on-delete rule: an item copied into any
// order must survive so the order history stays resolvable.
func (r *MenuRepository) OrderItemCount(menuItemID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&count).Error
	return count, err
}

// Delete removes the item and cascades to any cart lines holding it.
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&entity.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, id).Error
	})
}
