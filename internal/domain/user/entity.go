package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"    // Full access, excluded from attendance expectations
	RoleManager  Role = "Manager"  // Can approve leave and view team reports
	RoleEmployee Role = "Employee" // Regular employee
)

// AllRoles returns the roles accepted on registration responses and filters.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Departments are a fixed set; Admin accounts carry none.
const (
	DepartmentDesign      = "Design"
	DepartmentDevelopment = "Development"
	DepartmentMarketing   = "Marketing"
	DepartmentSales       = "Sales"
	DepartmentHR          = "HR"
)

func AllDepartments() []string {
	return []string{
		DepartmentDesign,
		DepartmentDevelopment,
		DepartmentMarketing,
		DepartmentSales,
		DepartmentHR,
	}
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        *string
	Department   *string
	DeviceToken  *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// IsApproved checks if the account passed admin approval
func (u *User) IsApproved() bool {
	return u.Status == StatusApproved
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
