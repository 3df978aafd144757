package user

import "errors"

var (
	ErrUnknownRole            = errors.New("unknown role")
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrReviewerAccessRequired = errors.New("reviewer access required")
)
