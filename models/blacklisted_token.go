package models

import "gorm.io/gorm"

// BlacklistedToken records a token revoked by logout. Rows older than
// ExpiresAt are garbage, the token would no longer verify anyway.
type BlacklistedToken struct {
	gorm.Model
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
