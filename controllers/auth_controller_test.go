package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}, &models.BlacklistedToken{}))
	require.NoError(t, db.Create(&models.Role{Name: constants.RoleUser}).Error)

	authService := services.NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRoleRepository(db),
		repositories.NewTokenRepository(db),
	)
	authController := NewAuthController(authService)

	r := gin.New()
	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthController_Signup(t *testing.T) {
	t.Run("valid input creates the account", func(t *testing.T) {
		r := setupAuthRouter(t)

		w := postJSON(r, "/auth/signup", dto.SignupInput{
			Email:          "a@x.com",
			Password:       "password1",
			RepeatPassword: "password1",
			FullName:       "Alice",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		r := setupAuthRouter(t)

		input := dto.SignupInput{
			Email:          "a@x.com",
			Password:       "password1",
			RepeatPassword: "password1",
			FullName:       "Alice",
		}
		require.Equal(t, http.StatusCreated, postJSON(r, "/auth/signup", input).Code)

		input.Password = "password2"
		input.RepeatPassword = "password2"
		w := postJSON(r, "/auth/signup", input)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("password confirmation mismatch is a client error", func(t *testing.T) {
		r := setupAuthRouter(t)

		w := postJSON(r, "/auth/signup", dto.SignupInput{
			Email:          "a@x.com",
			Password:       "password1",
			RepeatPassword: "password2",
			FullName:       "Alice",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is a client error", func(t *testing.T) {
		r := setupAuthRouter(t)

		w := postJSON(r, "/auth/signup", gin.H{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthController_Login(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	t.Run("registered credentials produce a token", func(t *testing.T) {
		r := setupAuthRouter(t)

		require.Equal(t, http.StatusCreated, postJSON(r, "/auth/signup", dto.SignupInput{
			Email:          "a@x.com",
			Password:       "password1",
			RepeatPassword: "password1",
			FullName:       "Alice",
		}).Code)

		w := postJSON(r, "/auth/login", dto.LoginInput{Email: "a@x.com", Password: "password1"})
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
	})

	t.Run("wrong password and unknown email get the same rejection", func(t *testing.T) {
		r := setupAuthRouter(t)

		require.Equal(t, http.StatusCreated, postJSON(r, "/auth/signup", dto.SignupInput{
			Email:          "a@x.com",
			Password:       "password1",
			RepeatPassword: "password1",
			FullName:       "Alice",
		}).Code)

		wrongPassword := postJSON(r, "/auth/login", dto.LoginInput{Email: "a@x.com", Password: "wrongpass1"})
		unknownEmail := postJSON(r, "/auth/login", dto.LoginInput{Email: "b@x.com", Password: "password1"})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
			"the response must not reveal whether the account exists")
	})
}
