package middlewares

import (
	"log"
	"net/http"
	"strings"

	"gin-catalog/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl allows the request through when the principal
// holds at least one of the given roles. Must run after AuthMiddleware so
// "user" is set; the roles checked come from the database record, not the
// token, so role changes take effect on live tokens.
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, ok := value.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		hasAccess := false
	outer:
		for _, role := range user.Roles {
			userRole := strings.TrimSpace(strings.ToUpper(role.Name))
			for _, allowedRole := range allowedRoles {
				if userRole == strings.TrimSpace(strings.ToUpper(allowedRole)) {
					hasAccess = true
					break outer
				}
			}
		}

		if !hasAccess {
			log.Printf("Access denied for user %d: roles=%v, required=%v",
				user.ID, user.RoleNames(), allowedRoles)
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
