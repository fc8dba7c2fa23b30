package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/pkg/resp"
	"github.com/nazex2000/LittleLemon/services"
)

// GroupController is the manager-facing role administration surface.
type GroupController struct{ Svc *services.RoleService }

func NewGroupController(s *services.RoleService) *GroupController {
	return &GroupController{Svc: s}
}

// GET /groups/:group/users
func (h *GroupController) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListGroupUsers(c.Param("group"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// POST /groups/:group/users
func (h *GroupController) AddUser(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	user, err := h.Svc.AddUserToGroup(c.Param("group"), body.Username)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// DELETE /groups/:group/users/:id
func (h *GroupController) RemoveUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid user id"))
		return
	}
	if err := h.Svc.RemoveUserFromGroup(c.Param("group"), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /users/:id/role
func (h *GroupController) GetRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid user id"))
		return
	}
	role, err := h.Svc.GetRole(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"role": role})
}

// PUT /users/:id/role
func (h *GroupController) AssignRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Error(c, apperr.BadRequest("invalid user id"))
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.BadRequest(err.Error()))
		return
	}
	role, ok := entity.ParseRole(body.Role)
	if !ok {
		resp.Error(c, apperr.BadRequest("unknown role"))
		return
	}
	if err := h.Svc.AssignRole(uint(id), role); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"role": role})
}
