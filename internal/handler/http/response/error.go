package response

import (
	"errors"
	"net/http"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/domain/user"
	"github.com/chiliososada/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrFileSlotEmpty):
		NotFound(w, "No file attached for the requested slot")
	case errors.Is(err, attendance.ErrForbidden):
		Forbidden(w, "Not allowed to perform this action")
	case errors.Is(err, user.ErrReviewerAccessRequired):
		Forbidden(w, "Reviewer access required")
	case errors.Is(err, attendance.ErrAlreadyReviewed):
		Conflict(w, "Attendance record already reviewed")
	case errors.Is(err, attendance.ErrTimeout):
		GatewayTimeout(w, "Operation timed out")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
