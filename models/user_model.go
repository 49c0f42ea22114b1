package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User passwords are kept in plain text; handlers blank them before responding.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

type UserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required"`
}

// UserPatch with an empty Password leaves the stored password unchanged.
type UserPatch struct {
	Username *string `json:"username"`
	Password string  `json:"password"`
	Role     *Role   `json:"role"`
}

func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Password != "" {
		u.Password = p.Password
	}
	return u
}
