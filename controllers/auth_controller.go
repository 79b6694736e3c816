package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.service.Signup(input.Email, input.Password, input.RepeatPassword, input.FullName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailOccupied):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email is occupied"})
		case errors.Is(err, services.ErrPasswordMismatch):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Passwords are mismatching"})
		default:
			log.Printf("Signup error: %v", err)
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
				// The unique index is the backstop for races that slip past
				// the existence check.
				ctx.JSON(http.StatusConflict, gin.H{"error": "Email is occupied"})
				return
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusCreated)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrBadCredentials),
			errors.Is(err, services.ErrUserBlocked):
			// The log line keeps the cases apart; the client sees one
			// uniform rejection.
			log.Printf("Login rejected for %s: %v", input.Email, err)
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrBadCredentials})
		default:
			log.Printf("Login error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{AccessToken: *token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	if !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if err := c.service.Logout(tokenString); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
