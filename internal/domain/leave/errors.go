package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyAssessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
)
