package services

import (
	"testing"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUserService(db *gorm.DB) IUserService {
	return NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewRoleRepository(db),
	)
}

// registerUser creates a user through the signup path and returns it with
// roles loaded.
func registerUser(t *testing.T, db *gorm.DB, email, password, fullName string) *models.User {
	t.Helper()

	require.NoError(t, newTestAuthService(db).Signup(email, password, password, fullName))

	var user models.User
	require.NoError(t, db.Preload("Roles").First(&user, "email = ?", email).Error)
	return &user
}

func TestUserService_Profile(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)

	t.Run("anonymous context", func(t *testing.T) {
		_, err := service.Profile(nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("authenticated principal", func(t *testing.T) {
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		user, err := service.Profile(alice)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("requires a principal", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		_, err := service.UpdateProfile(nil, dto.UpdateProfileInput{Email: "a@x.com", FullName: "Alice"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("email owned by another user conflicts", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		alice := registerUser(t, db, "a@x.com", "password1", "Alice")
		registerUser(t, db, "b@x.com", "password1", "Bob")

		_, err := service.UpdateProfile(alice, dto.UpdateProfileInput{Email: "b@x.com", FullName: "Alice"})
		assert.ErrorIs(t, err, ErrEmailConflict)
	})

	t.Run("re-submitting one's own email succeeds", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		updated, err := service.UpdateProfile(alice, dto.UpdateProfileInput{Email: "a@x.com", FullName: "Alice Smith"})
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", updated.FullName)

		var persisted models.User
		require.NoError(t, db.First(&persisted, "id = ?", alice.ID).Error)
		assert.Equal(t, "Alice Smith", persisted.FullName)
	})

	t.Run("moving to a fresh email succeeds", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		updated, err := service.UpdateProfile(alice, dto.UpdateProfileInput{Email: "alice@x.com", FullName: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", updated.Email)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	t.Run("wrong old password", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		err := service.ChangePassword(alice, dto.ChangePasswordInput{
			OldPassword:       "wrongpass1",
			NewPassword:       "password2",
			RepeatNewPassword: "password2",
		})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("new password confirmation mismatch", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		err := service.ChangePassword(alice, dto.ChangePasswordInput{
			OldPassword:       "password1",
			NewPassword:       "password2",
			RepeatNewPassword: "password3",
		})
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("wrong old password reports before the mismatching pair", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		err := service.ChangePassword(alice, dto.ChangePasswordInput{
			OldPassword:       "wrongpass1",
			NewPassword:       "password2",
			RepeatNewPassword: "password3",
		})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("requires a principal", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		err := service.ChangePassword(nil, dto.ChangePasswordInput{
			OldPassword:       "password1",
			NewPassword:       "password2",
			RepeatNewPassword: "password2",
		})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("success rotates the credential", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		authService := newTestAuthService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		err := service.ChangePassword(alice, dto.ChangePasswordInput{
			OldPassword:       "password1",
			NewPassword:       "password2",
			RepeatNewPassword: "password2",
		})
		require.NoError(t, err)

		_, err = authService.Login("a@x.com", "password2")
		assert.NoError(t, err, "new password should authenticate")

		_, err = authService.Login("a@x.com", "password1")
		assert.ErrorIs(t, err, ErrBadCredentials, "old password should no longer authenticate")
	})
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("creates a user with the requested role", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		user, err := service.CreateUser(dto.AdminCreateUserInput{
			Email:    "seller@x.com",
			Password: "password1",
			FullName: "Sally Seller",
			Role:     constants.RoleSeller,
		})
		require.NoError(t, err)
		assert.True(t, user.HasRole(constants.RoleSeller))
		assert.NotEqual(t, "password1", user.Password, "password must be stored hashed")
	})

	t.Run("occupied email conflicts", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		registerUser(t, db, "a@x.com", "password1", "Alice")

		_, err := service.CreateUser(dto.AdminCreateUserInput{
			Email:    "a@x.com",
			Password: "password1",
			FullName: "Imposter",
			Role:     constants.RoleUser,
		})
		assert.ErrorIs(t, err, ErrEmailConflict)
	})

	t.Run("unknown role name", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		_, err := service.CreateUser(dto.AdminCreateUserInput{
			Email:    "x@x.com",
			Password: "password1",
			FullName: "Xavier",
			Role:     "ROLE_WIZARD",
		})
		assert.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestUserService_BlockUnblock(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	t.Run("missing id", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		assert.ErrorIs(t, service.BlockUser(9999), ErrUserNotFound)
		assert.ErrorIs(t, service.UnblockUser(9999), ErrUserNotFound)
	})

	t.Run("block rejects authentication, unblock restores it", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		authService := newTestAuthService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		require.NoError(t, service.BlockUser(alice.ID))
		_, err := authService.Login("a@x.com", "password1")
		assert.ErrorIs(t, err, ErrUserBlocked)

		require.NoError(t, service.UnblockUser(alice.ID))
		_, err = authService.Login("a@x.com", "password1")
		assert.NoError(t, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("missing id reports not found", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)

		assert.ErrorIs(t, service.DeleteUser(9999), ErrUserNotFound)
	})

	t.Run("removes the user and its role associations", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		require.NoError(t, service.DeleteUser(alice.ID))

		var count int64
		db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count)
		assert.Zero(t, count, "user should be gone")

		var joinRows int64
		db.Table("user_roles").Where("user_id = ?", alice.ID).Count(&joinRows)
		assert.Zero(t, joinRows, "role associations should be cleared")
	})

	t.Run("deleted user's email can be registered again", func(t *testing.T) {
		db := setupTestDB(t)
		service := newTestUserService(db)
		authService := newTestAuthService(db)
		alice := registerUser(t, db, "a@x.com", "password1", "Alice")

		require.NoError(t, service.DeleteUser(alice.ID))

		err := authService.Signup("a@x.com", "password2", "password2", "Alice II")
		assert.NoError(t, err, "deletion must release the email")
	})
}
