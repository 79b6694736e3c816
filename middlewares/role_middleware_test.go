package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newRoleTestRouter wires a probe endpoint behind the role gate, with an
// optional user injected before it as the auth middleware would.
func newRoleTestRouter(user *models.User, allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(ctx *gin.Context) {
			ctx.Set("user", user)
		})
	}
	r.GET("/probe", RoleBasedAccessControl(allowedRoles...), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func performProbe(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRoleBasedAccessControl(t *testing.T) {
	admin := &models.User{Email: "admin@x.com", Roles: []models.Role{{Name: "ROLE_ADMIN"}}}
	seller := &models.User{Email: "seller@x.com", Roles: []models.Role{{Name: "ROLE_SELLER"}}}
	user := &models.User{Email: "user@x.com", Roles: []models.Role{{Name: "ROLE_USER"}}}

	t.Run("matching role is allowed", func(t *testing.T) {
		w := performProbe(newRoleTestRouter(admin, "ROLE_ADMIN"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("any of several allowed roles suffices", func(t *testing.T) {
		w := performProbe(newRoleTestRouter(seller, "ROLE_ADMIN", "ROLE_SELLER"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		w := performProbe(newRoleTestRouter(user, "ROLE_ADMIN", "ROLE_SELLER"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no principal is unauthorized", func(t *testing.T) {
		w := performProbe(newRoleTestRouter(nil, "ROLE_ADMIN"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role comparison ignores case", func(t *testing.T) {
		w := performProbe(newRoleTestRouter(admin, "role_admin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
