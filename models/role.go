package models

// Role is a named permission tag. Roles are seeded once at migration time
// and never created per-request.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;unique"`
}
