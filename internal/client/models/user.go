package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the identity attached to the current credential. After a process
// restart only the ID is known (recovered from token claims) until the next
// login fills in the rest.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the identity may see admin affordances. Advisory
// only: the server re-checks the role on every admin endpoint.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
