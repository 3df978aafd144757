package attendance

import (
	"mime/multipart"

	"github.com/chiliososada/ems-backend-go/internal/domain/user"
	"github.com/chiliososada/ems-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	OwnerID           string   `json:"-"` // Set from the authenticated caller, never from the body
	Month             string   `json:"month"`
	WorkHours         *float64 `json:"work_hours"`
	TransportationFee *float64 `json:"transportation_fee"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`

	TransportationFile       multipart.File        `json:"-"`
	TransportationFileHeader *multipart.FileHeader `json:"-"`
}

// Validate runs the submission checks in order and stops at the first
// violation, so the caller always receives a single field/reason pair.
func (r *SubmitRequest) Validate() error {
	if validator.IsEmpty(r.Month) {
		return validator.ValidationErrors{{
			Field:   "month",
			Message: "month is required",
		}}
	}
	if !validator.IsValidMonth(r.Month) {
		return validator.ValidationErrors{{
			Field:   "month",
			Message: "month must use the YYYY-MM format",
		}}
	}

	if r.WorkHours == nil {
		return validator.ValidationErrors{{
			Field:   "work_hours",
			Message: "work_hours is required",
		}}
	}
	if *r.WorkHours <= 0 {
		return validator.ValidationErrors{{
			Field:   "work_hours",
			Message: "work_hours must be greater than zero",
		}}
	}

	if r.TransportationFee == nil {
		return validator.ValidationErrors{{
			Field:   "transportation_fee",
			Message: "transportation_fee is required",
		}}
	}
	if *r.TransportationFee < 0 {
		return validator.ValidationErrors{{
			Field:   "transportation_fee",
			Message: "transportation_fee must not be negative",
		}}
	}

	if r.FileHeader == nil {
		return validator.ValidationErrors{{
			Field:   "attendance_file",
			Message: "attendance_file is required",
		}}
	}
	if err := validateDocument("attendance_file", r.FileHeader); err != nil {
		return err
	}

	if r.TransportationFileHeader != nil {
		if err := validateDocument("transportation_file", r.TransportationFileHeader); err != nil {
			return err
		}
	}

	return nil
}

func validateDocument(field string, header *multipart.FileHeader) error {
	if !validator.IsAllowedDocument(header.Filename, header.Header.Get("Content-Type")) {
		return validator.ValidationErrors{{
			Field:   field,
			Message: "only PDF, Word and Excel documents are accepted",
		}}
	}
	if header.Size > validator.MaxDocumentSize {
		return validator.ValidationErrors{{
			Field:   field,
			Message: "file size must not exceed 20MB",
		}}
	}
	return nil
}

// Sort keys accepted by the list operation.
const (
	SortByUploadDate        = "upload_date"
	SortByMonth             = "month"
	SortByWorkHours         = "work_hours"
	SortByTransportationFee = "transportation_fee"
	SortByStatus            = "status"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type ListRequest struct {
	MonthContains string  // Substring match against month, empty passes all
	Status        *Status // Exact status match, nil passes all

	SortBy    string
	SortOrder string

	Page     int
	PageSize int
}

// Normalize fills in the listing defaults for unset fields.
func (r *ListRequest) Normalize() {
	if r.SortBy == "" {
		r.SortBy = SortByUploadDate
	}
	if r.SortOrder == "" {
		r.SortOrder = SortDesc
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = 10
	}
}

func (r *ListRequest) Validate() error {
	validSortKeys := []string{
		SortByUploadDate,
		SortByMonth,
		SortByWorkHours,
		SortByTransportationFee,
		SortByStatus,
	}
	if !validator.IsInSlice(r.SortBy, validSortKeys) {
		return validator.ValidationErrors{{
			Field:   "sort_by",
			Message: "sort_by must be one of upload_date, month, work_hours, transportation_fee, status",
		}}
	}
	if r.SortOrder != SortAsc && r.SortOrder != SortDesc {
		return validator.ValidationErrors{{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		}}
	}
	if r.Page < 1 {
		return validator.ValidationErrors{{
			Field:   "page",
			Message: "page must be at least 1",
		}}
	}
	if r.PageSize < 1 {
		return validator.ValidationErrors{{
			Field:   "page_size",
			Message: "page_size must be at least 1",
		}}
	}
	return nil
}

type ReviewRequest struct {
	RecordID   string    `json:"-"`
	ReviewerID string    `json:"-"`
	Role       user.Role `json:"-"`

	Status   string  `json:"status"` // "approved" or "rejected"
	Comments *string `json:"comments,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	target, ok := ParseStatus(r.Status)
	if !ok || !target.IsTerminal() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be approved or rejected",
		}}
	}
	// A reviewer must state a reason when rejecting; approval comments are
	// optional.
	if target == StatusRejected && (r.Comments == nil || validator.IsEmpty(*r.Comments)) {
		return validator.ValidationErrors{{
			Field:   "comments",
			Message: "comments are required when rejecting",
		}}
	}
	return nil
}

// Target returns the parsed target status. Call Validate first.
func (r *ReviewRequest) Target() Status {
	target, _ := ParseStatus(r.Status)
	return target
}

// PagedResult mirrors the pagination contract of the listing endpoint. A page
// past the end carries empty items with the metadata still populated.
type PagedResult struct {
	Items       []AttendanceRecord `json:"items"`
	TotalCount  int                `json:"total_count"`
	PageCount   int                `json:"page_count"`
	CurrentPage int                `json:"current_page"`
	PageSize    int                `json:"page_size"`
}
