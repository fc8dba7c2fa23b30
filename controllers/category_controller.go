package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/pkg/resp"
	"github.com/nazex2000/LittleLemon/services"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid category id"))
		return
	}
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
