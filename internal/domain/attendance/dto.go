package attendance

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	CheckIn  string  `json:"check_in"`
	Timezone *string `json:"timezone"`

	// Parsed from CheckIn during Validate.
	DeviceTime time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	if validator.IsEmpty(r.CheckIn) {
		return ErrMissingDeviceTime
	}

	t, ok := validator.IsValidDateTime(r.CheckIn)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "check_in",
			Message: "check_in must be an ISO8601 timestamp",
		}}
	}
	r.DeviceTime = t

	return nil
}

type CheckOutRequest struct {
	CheckOut string  `json:"check_out"`
	Timezone *string `json:"timezone"`

	DeviceTime time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	if validator.IsEmpty(r.CheckOut) {
		return ErrMissingDeviceTime
	}

	t, ok := validator.IsValidDateTime(r.CheckOut)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "check_out",
			Message: "check_out must be an ISO8601 timestamp",
		}}
	}
	r.DeviceTime = t

	return nil
}

type HistoryFilter struct {
	Page  int
	Limit int
}

func (f *HistoryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type AttendanceResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	WorkDay          string   `json:"work_day"`
	CheckIn          string   `json:"check_in"`
	CheckOut         *string  `json:"check_out,omitempty"`
	WorkingHours     *float64 `json:"working_hours,omitempty"`
	CheckInTimezone  *string  `json:"check_in_timezone,omitempty"`
	CheckOutTimezone *string  `json:"check_out_timezone,omitempty"`
	Summary          *string  `json:"summary,omitempty"`
}

type HistoryResponse struct {
	Records    []AttendanceResponse `json:"records"`
	TotalItems int64                `json:"-"`
}

// ToResponse converts an attendance record for the wire. Summary is filled
// only by checkout.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		WorkDay:          a.WorkDay.Format("2006-01-02"),
		CheckIn:          a.CheckIn.Format(time.RFC3339),
		WorkingHours:     a.WorkingHours,
		CheckInTimezone:  a.CheckInTimezone,
		CheckOutTimezone: a.CheckOutTimezone,
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}
