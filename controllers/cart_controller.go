package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/pkg/resp"
	"github.com/nazex2000/LittleLemon/services"
	"github.com/nazex2000/LittleLemon/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	out, err := h.Svc.List(utils.CurrentUser(c).ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	line, err := h.Svc.Add(utils.CurrentUser(c).ID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUser(c).ID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
