package constants

// Role names. These must exist in the roles table before the server
// accepts traffic; migrations seed them.
const (
	RoleUser   = "ROLE_USER"
	RoleAdmin  = "ROLE_ADMIN"
	RoleSeller = "ROLE_SELLER"
)

// Error messages returned to clients.
const (
	ErrUnexpected     = "Unexpected error"
	ErrInvalidID      = "Invalid id"
	ErrInvalidInput   = "Invalid input"
	ErrBadCredentials = "Invalid email or password"
)
