package entity

// Role is the fixed two-value role enum persisted on users.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleNonAdmin Role = "nonadmin"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }
