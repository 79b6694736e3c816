package controllers

import (
	"gin-catalog/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the principal the auth middleware resolved for this
// request, or nil for anonymous contexts.
func currentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
