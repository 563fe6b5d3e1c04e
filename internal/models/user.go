package models

import "time"

// UserRole represents the roles a teacher account can hold.
type UserRole string

const (
	RoleTeacher     UserRole = "GURU"
	RoleHomeroom    UserRole = "WALI_KELAS"
	RoleCounselor   UserRole = "BK"
	RoleAdmin       UserRole = "ADMIN"
	DefaultUserRole          = RoleTeacher
)

// OAuthPasswordSentinel marks accounts created through an OAuth provider.
// Such accounts cannot log in with a password.
const OAuthPasswordSentinel = "oauth_protected"

// User represents an application user stored in the users table.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         UserRole  `db:"role" json:"role"`
	Avatar       *string   `db:"avatar" json:"avatar,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// PublicUser is the user shape returned to clients.
type PublicUser struct {
	ID       string   `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Name     string   `db:"name" json:"name"`
	Role     UserRole `db:"role" json:"role"`
	Avatar   *string  `db:"avatar" json:"avatar,omitempty"`
}

// Public strips credential fields from a full user row.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}
