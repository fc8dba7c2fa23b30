package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/pkg/resp"
	"github.com/nazex2000/LittleLemon/services"
	"github.com/nazex2000/LittleLemon/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	order, err := h.Svc.Place(utils.CurrentUser(c).ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List(utils.CurrentUser(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid order id"))
		return
	}
	order, err := h.Svc.Get(utils.CurrentUser(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id — manager assigns a delivery-crew member
func (h *OrderController) Assign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid order id"))
		return
	}
	var body struct {
		DeliveryCrew string `json:"delivery_crew" binding:"required"`
		Status       bool   `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	if err := h.Svc.AssignCrew(uint(id), body.DeliveryCrew, body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /orders/:id — manager or assigned crew flips the delivery status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid order id"))
		return
	}
	var body struct {
		Status *bool `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	if body.Status == nil {
		resp.Error(c, apperr.BadRequest("status is required"))
		return
	}
	if err := h.Svc.UpdateStatus(utils.CurrentUser(c), uint(id), *body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /orders/:id — manager only
func (h *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid order id"))
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
