package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Place converts the caller's cart into an order. The cart read, order row,
// item copies, total write-back and cart clear all run in one transaction:
// two interleaved placements cannot both spend the same cart lines.
func (s *OrderService) Place(userID uint) (*entity.Order, error) {
	var created entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.Lines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.BadRequest("cart is empty")
		}

		order := entity.Order{
			Number: uuid.NewString(),
			UserID: userID,
			State:  entity.StatePlaced,
			Total:  decimal.Zero,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for i := range lines {
			item := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: lines[i].MenuItemID,
				Quantity:   lines[i].Quantity,
				UnitPrice:  lines[i].UnitPrice,
				Total:      lines[i].Total(),
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
			total = total.Add(item.Total)
			order.Items = append(order.Items, item)
		}

		if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
			return err
		}
		order.Total = total

		if err := s.CartRepo.Clear(tx, userID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	return &created, nil
}

// List scopes by role: customers see their own orders, managers see all,
// delivery crew see the orders assigned to them.
func (s *OrderService) List(caller *entity.User) ([]entity.Order, error) {
	var (
		orders []entity.Order
		err    error
	)
	switch {
	case caller.IsManager():
		orders, err = s.Repo.ListAll()
	case caller.IsDeliveryCrew():
		orders, err = s.Repo.ListForCrew(caller.ID)
	default:
		orders, err = s.Repo.ListForUser(caller.ID)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// Get applies the same visibility rule as List to a single order.
func (s *OrderService) Get(caller *entity.User, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}

	switch {
	case o.UserID == caller.ID:
	case caller.IsManager():
	case caller.IsDeliveryCrew() && o.DeliveryCrewID != nil && *o.DeliveryCrewID == caller.ID:
	default:
		return nil, apperr.Forbidden("not your order")
	}
	return o, nil
}
