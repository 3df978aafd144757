package user

type Role string

const (
	RoleStudent Role = "student" // Submits monthly timesheets
	RoleTeacher Role = "teacher" // Can review submitted timesheets
	RoleAdmin   Role = "admin"   // Can review submitted timesheets, full access
)

// ParseRole maps a claim value to a known role. Unknown values come back
// with ok=false so callers can reject them instead of falling through.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// IsReviewer checks if the role grants authority to approve or reject
// attendance records.
func (r Role) IsReviewer() bool {
	return r == RoleTeacher || r == RoleAdmin
}
