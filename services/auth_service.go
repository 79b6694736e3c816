package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gin-catalog/constants"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Signup(email string, password string, repeatPassword string, fullName string) error
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IUserRepository
	roleRepository  repositories.IRoleRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IUserRepository, roleRepository repositories.IRoleRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		roleRepository:  roleRepository,
		tokenRepository: tokenRepository,
	}
}

// Signup registers a new user with the base user role. The email check runs
// before the password confirmation check, so an occupied email wins even
// when the passwords also disagree.
func (s *AuthService) Signup(email string, password string, repeatPassword string, fullName string) error {
	_, err := s.repository.FindUser(email)
	if err == nil {
		return ErrEmailOccupied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if password != repeatPassword {
		return ErrPasswordMismatch
	}

	// Roles are seeded at migration time. A missing base role is a broken
	// deployment, not a user-facing failure.
	userRole, err := s.roleRepository.FindByName(constants.RoleUser)
	if err != nil {
		log.Panicf("%s not found, roles must be seeded before startup: %v", constants.RoleUser, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Blocked:  false,
		Roles:    []models.Role{*userRole},
	}
	return s.repository.CreateUser(&user)
}

// Login verifies credentials and returns a signed token. Blocked users are
// rejected regardless of credential correctness; the distinct errors exist
// for logging and all map to the same rejection at the transport layer.
func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(email)

	// Dummy digest so the bcrypt comparison always runs, whether or not the
	// user exists.
	digest := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		digest = foundUser.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if compareErr != nil {
		return nil, ErrBadCredentials
	}
	if foundUser.Blocked {
		return nil, ErrUserBlocked
	}

	token, err := CreateToken(foundUser.ID, foundUser.Email, foundUser.RoleNames())
	if err != nil {
		return nil, err
	}
	return token, nil
}

func CreateToken(userID uint, email string, roles []string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"roles": roles,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// GetUserFromToken resolves the principal for a request. The user is loaded
// fresh from the store so blocking and role changes take effect on tokens
// that are still live.
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, fmt.Errorf("token is blacklisted")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	user, err := s.repository.FindUser(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Blocked {
		return nil, ErrUserBlocked
	}
	return user, nil
}

// Logout blacklists the token until its own expiry.
func (s *AuthService) Logout(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Hour).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
