package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/repository"
)

// RoleService is the authorization gate's mutable half: every role change in
// the system goes through here, so users can never hold two roles at once.
type RoleService struct {
	userRepo *repository.UserRepository
}

func NewRoleService(repo *repository.UserRepository) *RoleService {
	return &RoleService{userRepo: repo}
}

// ListGroupUsers returns the users currently holding the named group's role.
func (s *RoleService) ListGroupUsers(group string) ([]entity.User, error) {
	role, ok := entity.RoleFromGroup(group)
	if !ok {
		return nil, apperr.NotFound("group not found")
	}
	users, err := s.userRepo.ListByRole(role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// AddUserToGroup gives the named user the group's role. Idempotent; under the
// single-role model it also replaces any other role the user held.
func (s *RoleService) AddUserToGroup(group, username string) (*entity.User, error) {
	if username == "" {
		return nil, apperr.BadRequest("username is required")
	}
	role, ok := entity.RoleFromGroup(group)
	if !ok {
		return nil, apperr.NotFound("group not found")
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	if user.Role != role {
		if err := s.userRepo.SetRole(user.ID, role); err != nil {
			return nil, apperr.Internal(err)
		}
		user.Role = role
	}
	return user, nil
}

// RemoveUserFromGroup clears the user's role if it matches the named group;
// a user not in the group is a no-op, not an error.
func (s *RoleService) RemoveUserFromGroup(group string, userID uint) error {
	role, ok := entity.RoleFromGroup(group)
	if !ok {
		return apperr.NotFound("group not found")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}

	if user.Role != role {
		return nil
	}
	if err := s.userRepo.SetRole(user.ID, entity.RoleNone); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *RoleService) GetRole(userID uint) (entity.Role, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.RoleNone, apperr.NotFound("user not found")
		}
		return entity.RoleNone, apperr.Internal(err)
	}
	return user.Role, nil
}

// AssignRole replaces the user's role with exactly one value (or none).
func (s *RoleService) AssignRole(userID uint, role entity.Role) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}
	if err := s.userRepo.SetRole(userID, role); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
