package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrForbidden       = errors.New("not allowed to perform this action")
	ErrAlreadyReviewed = errors.New("attendance record already reviewed")
	ErrFileSlotEmpty   = errors.New("no file attached for the requested slot")
	ErrTimeout         = errors.New("operation timed out")
)
