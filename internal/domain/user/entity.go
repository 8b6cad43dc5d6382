package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents a staff role (matches user_role enum)
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// User represents a staff account
type User struct {
	ID           uuid.UUID    `db:"id"`
	Username     string       `db:"username"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	FullName     string       `db:"full_name"`
	Role         Role         `db:"role"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
