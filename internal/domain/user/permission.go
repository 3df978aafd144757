package user

type Permission string

const (
	// Attendance Management
	PermissionAttendanceSubmit    Permission = "attendance.submit"
	PermissionAttendanceViewAll   Permission = "attendance.view_all"
	PermissionAttendanceReview    Permission = "attendance.review"
	PermissionAttendanceDeleteOwn Permission = "attendance.delete_own"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceSubmit,
		PermissionAttendanceViewAll,
		PermissionAttendanceReview,
		PermissionAttendanceDeleteOwn,
	},
	RoleTeacher: {
		PermissionAttendanceSubmit,
		PermissionAttendanceViewAll,
		PermissionAttendanceReview,
		PermissionAttendanceDeleteOwn,
	},
	RoleStudent: {
		PermissionAttendanceSubmit,
		PermissionAttendanceViewAll,
		PermissionAttendanceDeleteOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
