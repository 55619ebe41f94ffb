package session

// Role is the access requirement a view declares.
type Role int

const (
	// RoleNone admits everyone, including anonymous visitors.
	RoleNone Role = iota
	// RoleAuthenticated admits any logged-in account.
	RoleAuthenticated
	// RoleRestaurantOwner admits only restaurant-owner accounts.
	RoleRestaurantOwner
)

// Decision is the route guard's verdict. The guard only decides; navigation
// is the caller's job, and the guard never mutates the session.
type Decision int

const (
	Allow Decision = iota
	// RedirectLogin means no qualifying session exists.
	RedirectLogin
	// RedirectHome means the session is authenticated but lacks the
	// required account type.
	RedirectHome
)

// Authorize checks the current session against a required role. An Unknown
// session (Restore not yet run) is treated as anonymous.
func (s *Store) Authorize(required Role) Decision {
	if required == RoleNone {
		return Allow
	}

	user := s.Current()
	if user == nil {
		return RedirectLogin
	}

	if required == RoleRestaurantOwner && !user.IsRestaurantOwner() {
		return RedirectHome
	}
	return Allow
}
