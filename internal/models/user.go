package models

// Roles assignable to a user account.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a stored account record.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
	Email        string `json:"email"`
	Role         string `json:"role"` // ADMIN | USER
	Active       bool   `json:"active"`
}

// IsAdmin reports whether the account carries the administrative role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LoginResponse is returned to a successfully authenticated caller so the
// client can render its UI without a second lookup.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
}
