package services

import (
	"errors"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IUserService covers profile self-service and the admin user surface.
// Every operation that needs "who is calling" takes the principal
// explicitly; there is no ambient security context.
type IUserService interface {
	Profile(current *models.User) (*models.User, error)
	UpdateProfile(current *models.User, input dto.UpdateProfileInput) (*models.User, error)
	ChangePassword(current *models.User, input dto.ChangePasswordInput) error
	CreateUser(input dto.AdminCreateUserInput) (*models.User, error)
	FindAll() (*[]models.User, error)
	BlockUser(userID uint) error
	UnblockUser(userID uint) error
	DeleteUser(userID uint) error
}

type UserService struct {
	repository     repositories.IUserRepository
	roleRepository repositories.IRoleRepository
}

func NewUserService(repository repositories.IUserRepository, roleRepository repositories.IRoleRepository) IUserService {
	return &UserService{
		repository:     repository,
		roleRepository: roleRepository,
	}
}

func (s *UserService) Profile(current *models.User) (*models.User, error) {
	if current == nil {
		return nil, ErrUnauthorized
	}
	return current, nil
}

// UpdateProfile changes the principal's email and full name. Moving to an
// email owned by a different user fails; re-submitting one's own email is
// allowed.
func (s *UserService) UpdateProfile(current *models.User, input dto.UpdateProfileInput) (*models.User, error) {
	if current == nil {
		return nil, ErrUnauthorized
	}

	byEmail, err := s.repository.FindUser(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if byEmail != nil && byEmail.ID != current.ID {
		return nil, ErrEmailConflict
	}

	current.Email = input.Email
	current.FullName = input.FullName
	if err := s.repository.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// ChangePassword verifies the old password before looking at the new pair,
// so a wrong old password reports as bad credentials even when the new
// passwords also disagree.
func (s *UserService) ChangePassword(current *models.User, input dto.ChangePasswordInput) error {
	if current == nil {
		return ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(input.OldPassword)); err != nil {
		return ErrBadCredentials
	}

	if input.NewPassword != input.RepeatNewPassword {
		return ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	current.Password = string(hashedPassword)
	return s.repository.Update(current)
}

// CreateUser is the admin-driven creation path. Role enforcement happens in
// the route middleware, not here.
func (s *UserService) CreateUser(input dto.AdminCreateUserInput) (*models.User, error) {
	_, err := s.repository.FindUser(input.Email)
	if err == nil {
		return nil, ErrEmailConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role, err := s.roleRepository.FindByName(input.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
		FullName: input.FullName,
		Blocked:  false,
		Roles:    []models.Role{*role},
	}
	if err := s.repository.CreateUser(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindAll() (*[]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) BlockUser(userID uint) error {
	return s.setBlocked(userID, true)
}

func (s *UserService) UnblockUser(userID uint) error {
	return s.setBlocked(userID, false)
}

func (s *UserService) setBlocked(userID uint, blocked bool) error {
	user, err := s.repository.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	user.Blocked = blocked
	return s.repository.Update(user)
}

// DeleteUser removes the user and its role associations. Unlike the order
// and category deletes this one reports a missing id.
func (s *UserService) DeleteUser(userID uint) error {
	err := s.repository.Delete(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
