package leave

import "time"

type Type string

const (
	TypeSick     Type = "Sick Leave"
	TypeCasual   Type = "Casual Leave"
	TypeAnnual   Type = "Annual Leave"
	TypePersonal Type = "Personal Leave"
)

func AllTypes() []Type {
	return []Type{TypeSick, TypeCasual, TypeAnnual, TypePersonal}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Leave struct {
	ID         string
	UserID     string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	ApproverID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	UserName  *string
	UserEmail *string
}
