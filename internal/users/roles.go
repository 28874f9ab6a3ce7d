package users

// Role separates campers from camp administrators. Admin-only routes
// (pricing config, blocked dates, lifecycle overrides) check it.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}
