package dto

import (
	"time"

	"gin-catalog/models"
)

type UpdateProfileInput struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword       string `json:"oldPassword" binding:"required"`
	NewPassword       string `json:"newPassword" binding:"required,min=8"`
	RepeatNewPassword string `json:"repeatNewPassword" binding:"required"`
}

type AdminCreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserResponse is the external view of a user. The password digest is
// never included.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Blocked   bool      `json:"blocked"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Blocked:   user.Blocked,
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
	}
}
