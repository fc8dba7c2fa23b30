package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/pkg/apperr"
)

// Transitions run inside a transaction and finish with a guarded UPDATE
// (WHERE state <> DELIVERED). Zero rows affected means another request won
// the race to the terminal state; the caller sees the same BadRequest as a
// plain terminal-order mutation.

// AssignCrew puts the named delivery-crew member on the order. delivered=true
// closes the order in the same write.
func (s *OrderService) AssignCrew(orderID uint, crewUsername string, delivered bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return apperr.Internal(err)
		}
		if o.State.Terminal() {
			return apperr.BadRequest("order already delivered")
		}

		crew, err := s.UserRepo.FindByUsername(crewUsername)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user not found")
			}
			return apperr.Internal(err)
		}
		if !crew.IsDeliveryCrew() {
			return apperr.BadRequest("user is not delivery crew")
		}

		state := entity.StateAssigned
		if delivered {
			state = entity.StateDelivered
		}
		affected, err := s.Repo.UpdateGuarded(tx, o.ID, map[string]any{
			"delivery_crew_id": crew.ID,
			"state":            state,
		})
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.BadRequest("order already delivered")
		}
		return nil
	})
}

// UpdateStatus moves the order's delivery flag without touching the crew.
// Crew callers may only touch orders assigned to them.
func (s *OrderService) UpdateStatus(caller *entity.User, orderID uint, delivered bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return apperr.Internal(err)
		}
		if caller.IsDeliveryCrew() && (o.DeliveryCrewID == nil || *o.DeliveryCrewID != caller.ID) {
			return apperr.Forbidden("not your delivery")
		}
		if o.State.Terminal() {
			return apperr.BadRequest("order already delivered")
		}

		state := entity.StatePlaced
		switch {
		case delivered:
			state = entity.StateDelivered
		case o.DeliveryCrewID != nil:
			state = entity.StateAssigned
		}
		affected, err := s.Repo.UpdateGuarded(tx, o.ID, map[string]any{"state": state})
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.BadRequest("order already delivered")
		}
		return nil
	})
}

// Delete removes the order and cascades to its items. Manager-only at the
// route; nothing here re-checks the role.
func (s *OrderService) Delete(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.FindByID(orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return apperr.Internal(err)
		}
		if err := s.Repo.Delete(tx, orderID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}
