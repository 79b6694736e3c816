package repositories

import (
	"testing"
	"time"

	"gin-catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTokenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&models.BlacklistedToken{}), "failed to migrate tables")
	return db
}

func TestTokenRepository_Blacklist(t *testing.T) {
	db := setupTokenTestDB(t)
	repo := NewTokenRepository(db)
	expiresAt := time.Now().Add(time.Hour).Unix()

	blacklisted, err := repo.IsTokenBlacklisted("tok-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.AddBlacklistedToken("tok-1", expiresAt))

	blacklisted, err = repo.IsTokenBlacklisted("tok-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenRepository_AddIsIdempotent(t *testing.T) {
	db := setupTokenTestDB(t)
	repo := NewTokenRepository(db)
	expiresAt := time.Now().Add(time.Hour).Unix()

	require.NoError(t, repo.AddBlacklistedToken("tok-1", expiresAt))
	assert.NoError(t, repo.AddBlacklistedToken("tok-1", expiresAt), "a repeated logout must not fail")

	var rows int64
	db.Model(&models.BlacklistedToken{}).Where("token = ?", "tok-1").Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestTokenRepository_CleanExpiredTokens(t *testing.T) {
	db := setupTokenTestDB(t)
	repo := NewTokenRepository(db)

	require.NoError(t, repo.AddBlacklistedToken("stale", time.Now().Add(-time.Minute).Unix()))
	require.NoError(t, repo.AddBlacklistedToken("live", time.Now().Add(time.Hour).Unix()))

	removed, err := repo.CleanExpiredTokens()
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// Purged for good, so the unique token column is released too.
	var rows int64
	db.Unscoped().Model(&models.BlacklistedToken{}).Where("token = ?", "stale").Count(&rows)
	assert.Zero(t, rows)

	blacklisted, err := repo.IsTokenBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
