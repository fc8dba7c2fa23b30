package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CartOut struct {
	Items    []entity.CartLine `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

func (s *CartService) List(userID uint) (*CartOut, error) {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	subtotal := decimal.Zero
	for i := range lines {
		subtotal = subtotal.Add(lines[i].Total())
	}
	return &CartOut{Items: lines, Subtotal: subtotal}, nil
}

// Add snapshots the item's current price into the new line. One line per
// (user, item): a second add for the same item is a conflict, not a merge.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartLine, error) {
	item, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal(err)
	}

	exists, err := s.CartRepo.Exists(userID, item.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("menu item already in cart")
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
	}
	if err := s.CartRepo.Create(line); err != nil {
		// two concurrent adds race past the Exists check; the unique index
		// settles it and the loser still sees a conflict
		if strings.Contains(strings.ToUpper(err.Error()), "UNIQUE") {
			return nil, apperr.Conflict("menu item already in cart")
		}
		return nil, apperr.Internal(err)
	}
	line.MenuItem = *item
	return line, nil
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
