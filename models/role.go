package models

// Role is a staff authorization level. Roles form an ordered hierarchy so
// that endpoints gated on a minimum role automatically admit every higher
// role; comparisons go through Satisfies rather than string equality.
type Role string

const (
	// RoleViewer is the implicit default for authenticated accounts with no
	// elevated privileges.
	RoleViewer Role = "VIEWER"

	// RoleIntakeOfficer may register and edit cards and decide claims.
	RoleIntakeOfficer Role = "INTAKE_OFFICER"

	// RoleAdmin may additionally manage holding locations.
	RoleAdmin Role = "ADMIN"
)

// rank orders roles by privilege. Unknown values rank lowest so a corrupted
// or future role string degrades to least privilege.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleIntakeOfficer:
		return 1
	case RoleViewer:
		return 0
	}
	return -1
}

// Satisfies reports whether r grants at least the privileges of required.
func (r Role) Satisfies(required Role) bool {
	return r.rank() >= required.rank() && r.rank() >= 0
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r.rank() >= 0
}
