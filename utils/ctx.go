package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/nazex2000/LittleLemon/entity"
)

const ctxUserKey = "currentUser"

func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(ctxUserKey, u)
}

// CurrentUser returns the authenticated caller placed by the auth middleware,
// or nil on unauthenticated routes.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
