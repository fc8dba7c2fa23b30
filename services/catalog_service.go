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

type CatalogService struct {
	CatRepo  *repository.CategoryRepository
	MenuRepo *repository.MenuRepository
}

func NewCatalogService(cr *repository.CategoryRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{CatRepo: cr, MenuRepo: mr}
}

// ----- Categories -----

type CategoryIn struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	cats, err := s.CatRepo.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return cats, nil
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	slug := strings.TrimSpace(in.Slug)
	count, err := s.CatRepo.CountBySlug(slug)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("category slug already exists")
	}
	cat := &entity.Category{Slug: slug, Name: strings.TrimSpace(in.Name)}
	if err := s.CatRepo.Create(cat); err != nil {
		return nil, apperr.Internal(err)
	}
	return cat, nil
}

// DeleteCategory refuses while menu items still reference the category.
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.CatRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return apperr.Internal(err)
	}
	count, err := s.CatRepo.MenuItemCount(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict("category is in use")
	}
	if err := s.CatRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ----- Menu items -----

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

type MenuItemPatch struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"categoryId"`
}

func (s *CatalogService) ListMenuItems(f repository.MenuFilter) (*repository.MenuPage, error) {
	page, err := s.MenuRepo.List(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.MenuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, apperr.Internal(err)
	}
	return m, nil
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, apperr.BadRequest("price must not be negative")
	}
	if _, err := s.CatRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("category not found")
		}
		return nil, apperr.Internal(err)
	}
	count, err := s.MenuRepo.CountByTitle(in.Title, 0)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("menu item title already exists")
	}

	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, apperr.Internal(err)
	}
	return m, nil
}

// ReplaceMenuItem is the PUT semantics: every field is taken from the payload.
func (s *CatalogService) ReplaceMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	patch := &MenuItemPatch{
		Title:      &in.Title,
		Price:      &in.Price,
		Featured:   &in.Featured,
		CategoryID: &in.CategoryID,
	}
	return s.applyMenuItemPatch(m, patch)
}

// PatchMenuItem updates only the fields present in the payload.
func (s *CatalogService) PatchMenuItem(id uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	return s.applyMenuItemPatch(m, patch)
}

func (s *CatalogService) applyMenuItemPatch(m *entity.MenuItem, patch *MenuItemPatch) (*entity.MenuItem, error) {
	if patch.Title != nil && *patch.Title != m.Title {
		count, err := s.MenuRepo.CountByTitle(*patch.Title, m.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if count > 0 {
			return nil, apperr.Conflict("menu item title already exists")
		}
		m.Title = *patch.Title
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, apperr.BadRequest("price must not be negative")
		}
		m.Price = *patch.Price
	}
	if patch.Featured != nil {
		m.Featured = *patch.Featured
	}
	if patch.CategoryID != nil {
		if _, err := s.CatRepo.FindByID(*patch.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.BadRequest("category not found")
			}
			return nil, apperr.Internal(err)
		}
		m.CategoryID = *patch.CategoryID
	}
	if err := s.MenuRepo.Save(m); err != nil {
		return nil, apperr.Internal(err)
	}
	return m, nil
}

// DeleteMenuItem refuses while order items reference the item (order history
// must stay resolvable); cart lines holding it are cleared with it.
func (s *CatalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	count, err := s.MenuRepo.OrderItemCount(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict("menu item is in use")
	}
	if err := s.MenuRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
