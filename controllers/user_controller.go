package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Profile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	CreateUser(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	BlockUser(ctx *gin.Context)
	UnblockUser(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) Profile(ctx *gin.Context) {
	user, err := c.service.Profile(currentUser(ctx))
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewUserResponse(user)})
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var input dto.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.UpdateProfile(currentUser(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			ctx.AbortWithStatus(http.StatusUnauthorized)
		case errors.Is(err, services.ErrEmailConflict):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email is occupied"})
		default:
			log.Printf("UpdateProfile error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewUserResponse(user)})
}

func (c *UserController) ChangePassword(ctx *gin.Context) {
	var input dto.ChangePasswordInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	err := c.service.ChangePassword(currentUser(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			ctx.AbortWithStatus(http.StatusUnauthorized)
		case errors.Is(err, services.ErrBadCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Old password is mismatching"})
		case errors.Is(err, services.ErrPasswordMismatch):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "New passwords are mismatching"})
		default:
			log.Printf("ChangePassword error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *UserController) CreateUser(ctx *gin.Context) {
	var input dto.AdminCreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.CreateUser(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailConflict):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email is occupied"})
		case errors.Is(err, services.ErrRoleNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Role not found: " + input.Role})
		default:
			log.Printf("CreateUser error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewUserResponse(user)})
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.UserResponse, 0, len(*users))
	for i := range *users {
		responses = append(responses, dto.NewUserResponse(&(*users)[i]))
	}
	ctx.JSON(http.StatusOK, gin.H{"data": responses})
}

func (c *UserController) BlockUser(ctx *gin.Context) {
	c.setBlocked(ctx, c.service.BlockUser)
}

func (c *UserController) UnblockUser(ctx *gin.Context) {
	c.setBlocked(ctx, c.service.UnblockUser)
}

func (c *UserController) setBlocked(ctx *gin.Context, op func(uint) error) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := op(uint(userID)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Block/unblock error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.DeleteUser(uint(userID)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("DeleteUser error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.Status(http.StatusNoContent)
}
