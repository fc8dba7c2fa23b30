package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/pkg/resp"
	"github.com/nazex2000/LittleLemon/repository"
	"github.com/nazex2000/LittleLemon/services"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?category=&price_from=&price_to=&search=&ordering=&perpage=&page=
func (h *MenuController) List(c *gin.Context) {
	filter, err := parseMenuFilter(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	page, err := h.Svc.ListMenuItems(*filter)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, page)
}

func parseMenuFilter(c *gin.Context) (*repository.MenuFilter, error) {
	var f repository.MenuFilter

	if v := c.Query("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperr.BadRequest("invalid category filter")
		}
		cid := uint(id)
		f.CategoryID = &cid
	}
	if v := c.Query("price_from"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, apperr.BadRequest("invalid price_from")
		}
		f.PriceFrom = &d
	}
	if v := c.Query("price_to"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, apperr.BadRequest("invalid price_to")
		}
		f.PriceTo = &d
	}
	f.Search = c.Query("search")
	if v := c.Query("ordering"); v != "" {
		f.Ordering = strings.Split(v, ",")
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PerPage, _ = strconv.Atoi(c.DefaultQuery("perpage", "10"))
	return &f, nil
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid menu item id"))
		return
	}
	m, err := h.Svc.GetMenuItem(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	m, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /menu-items/:id
func (h *MenuController) Replace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid menu item id"))
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	m, err := h.Svc.ReplaceMenuItem(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// PATCH /menu-items/:id
func (h *MenuController) Patch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid menu item id"))
		return
	}
	var req services.MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	m, err := h.Svc.PatchMenuItem(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid menu item id"))
		return
	}
	if err := h.Svc.DeleteMenuItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
