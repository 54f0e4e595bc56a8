package user

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether s is one of the closed set of roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	AvatarURL *string   `json:"profileImageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateProfileParams struct {
	UserID    string
	Name      *string
	Email     *string
	AvatarURL *string
}
