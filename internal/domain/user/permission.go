package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendanceCheckIn Permission = "attendance.check_in"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceReports Permission = "attendance.reports"
	PermissionAttendanceTeam    Permission = "attendance.team"

	// Leave Management
	PermissionLeaveViewOwn    Permission = "leave.view_own"
	PermissionLeaveCreate     Permission = "leave.create"
	PermissionLeaveViewAll    Permission = "leave.view_all"
	PermissionLeaveApprove    Permission = "leave.approve"
	PermissionLeaveViewByDept Permission = "leave.view_by_department"

	// Task Management
	PermissionTaskViewOwn Permission = "task.view_own"
	PermissionTaskUpdate  Permission = "task.update_own"
	PermissionTaskAssign  Permission = "task.assign"
	PermissionTaskViewAll Permission = "task.view_all"

	// Announcements
	PermissionAnnouncementView   Permission = "announcement.view"
	PermissionAnnouncementManage Permission = "announcement.manage"

	// User Directory
	PermissionUserViewByDept Permission = "user.view_by_department"
	PermissionUserManage     Permission = "user.manage"

	// Analytics
	PermissionAnalyticsView Permission = "analytics.view"
)

// RolePermissions maps roles to their permissions. Role checks happen here
// once per request instead of inline per handler.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceReports,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionTaskViewAll,
		PermissionAnnouncementView,
		PermissionAnnouncementManage,
		PermissionUserManage,
		PermissionAnalyticsView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
		PermissionAttendanceReports,
		PermissionAttendanceTeam,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveViewByDept,
		PermissionTaskViewOwn,
		PermissionTaskUpdate,
		PermissionTaskAssign,
		PermissionTaskViewAll,
		PermissionAnnouncementView,
		PermissionAnnouncementManage,
		PermissionUserViewByDept,
		PermissionAnalyticsView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionTaskViewOwn,
		PermissionTaskUpdate,
		PermissionAnnouncementView,
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
