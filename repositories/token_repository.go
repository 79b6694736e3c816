package repositories

import (
	"time"

	"gin-catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ITokenRepository interface {
	AddBlacklistedToken(token string, expiresAt int64) error
	IsTokenBlacklisted(token string) (bool, error)
	// CleanExpiredTokens purges entries whose expiry has passed and
	// reports how many were removed.
	CleanExpiredTokens() (int64, error)
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) AddBlacklistedToken(token string, expiresAt int64) error {
	blacklisted := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	// Logging out twice with the same token is a no-op, not a conflict.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&blacklisted).Error
}

func (r *TokenRepository) IsTokenBlacklisted(token string) (bool, error) {
	var count int64
	result := r.db.Model(&models.BlacklistedToken{}).Where("token = ?", token).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *TokenRepository) CleanExpiredTokens() (int64, error) {
	// Unscoped: an expired entry is dead weight, no tombstone should keep
	// occupying the unique token column.
	now := time.Now().Unix()
	result := r.db.Unscoped().Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
