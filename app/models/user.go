package models

import "time"

// User represents an account in the system. Students carry a group reference,
// teachers and admins do not.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	FullName  string    `json:"full_name" db:"full_name"`
	Role      Role      `json:"role" db:"role"`
	GroupID   *string   `json:"group_id,omitempty" db:"group_id"`
	GroupName string    `json:"group_name,omitempty"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsTeacher reports whether the user holds the teacher role.
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// Session represents a login session stored server-side.
type Session struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
