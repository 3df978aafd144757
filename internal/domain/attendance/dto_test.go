package attendance

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/chiliososada/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		header.Header.Set("Content-Type", contentType)
	}
	return header
}

func validSubmit() SubmitRequest {
	workHours := 160.0
	fee := 5000.0
	return SubmitRequest{
		OwnerID:           "user-1",
		Month:             "2023-05",
		WorkHours:         &workHours,
		TransportationFee: &fee,
		FileHeader:        documentHeader("timesheet.xlsx", "", 1024),
	}
}

func TestSubmitRequest_Validate(t *testing.T) {
	negative := -1.0
	zero := 0.0

	tests := []struct {
		name      string
		mutate    func(*SubmitRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *SubmitRequest) {},
		},
		{
			name:      "missing month",
			mutate:    func(r *SubmitRequest) { r.Month = "" },
			wantField: "month",
		},
		{
			name:      "malformed month",
			mutate:    func(r *SubmitRequest) { r.Month = "May 2023" },
			wantField: "month",
		},
		{
			name:      "missing work hours",
			mutate:    func(r *SubmitRequest) { r.WorkHours = nil },
			wantField: "work_hours",
		},
		{
			name:      "zero work hours",
			mutate:    func(r *SubmitRequest) { r.WorkHours = &zero },
			wantField: "work_hours",
		},
		{
			name:      "missing transportation fee",
			mutate:    func(r *SubmitRequest) { r.TransportationFee = nil },
			wantField: "transportation_fee",
		},
		{
			name:      "negative transportation fee",
			mutate:    func(r *SubmitRequest) { r.TransportationFee = &negative },
			wantField: "transportation_fee",
		},
		{
			name:      "missing attendance file",
			mutate:    func(r *SubmitRequest) { r.FileHeader = nil },
			wantField: "attendance_file",
		},
		{
			name: "disallowed attendance file type",
			mutate: func(r *SubmitRequest) {
				r.FileHeader = documentHeader("photo.png", "image/png", 1024)
			},
			wantField: "attendance_file",
		},
		{
			name: "oversized attendance file",
			mutate: func(r *SubmitRequest) {
				r.FileHeader = documentHeader("timesheet.xlsx", "", 21<<20)
			},
			wantField: "attendance_file",
		},
		{
			name: "file at the size limit passes",
			mutate: func(r *SubmitRequest) {
				r.FileHeader = documentHeader("timesheet.pdf", "", 20<<20)
			},
		},
		{
			name: "media type accepted when extension is unknown",
			mutate: func(r *SubmitRequest) {
				r.FileHeader = documentHeader("timesheet", "application/pdf", 1024)
			},
		},
		{
			name: "disallowed transportation file type",
			mutate: func(r *SubmitRequest) {
				r.TransportationFileHeader = documentHeader("receipt.png", "image/png", 1024)
			},
			wantField: "transportation_file",
		},
		{
			name: "oversized transportation file",
			mutate: func(r *SubmitRequest) {
				r.TransportationFileHeader = documentHeader("receipt.pdf", "", 21<<20)
			},
			wantField: "transportation_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmit()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}

func TestSubmitRequest_Validate_FirstViolationWins(t *testing.T) {
	// Month precedes work hours in the check order, so with both invalid
	// only the month violation is reported.
	req := validSubmit()
	req.Month = ""
	req.WorkHours = nil

	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "month", verrs[0].Field)
}

func TestListRequest_Normalize(t *testing.T) {
	req := ListRequest{}
	req.Normalize()

	assert.Equal(t, SortByUploadDate, req.SortBy)
	assert.Equal(t, SortDesc, req.SortOrder)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PageSize)

	// Explicit values survive normalization.
	req = ListRequest{SortBy: SortByMonth, SortOrder: SortAsc, Page: 3, PageSize: 25}
	req.Normalize()
	assert.Equal(t, SortByMonth, req.SortBy)
	assert.Equal(t, SortAsc, req.SortOrder)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.PageSize)
}

func TestListRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ListRequest)
		wantField string
	}{
		{name: "defaults are valid", mutate: func(r *ListRequest) {}},
		{
			name:      "unknown sort key",
			mutate:    func(r *ListRequest) { r.SortBy = "owner_id" },
			wantField: "sort_by",
		},
		{
			name:      "unknown sort order",
			mutate:    func(r *ListRequest) { r.SortOrder = "sideways" },
			wantField: "sort_order",
		},
		{
			name:      "negative page",
			mutate:    func(r *ListRequest) { r.Page = -1 },
			wantField: "page",
		},
		{
			name:      "negative page size",
			mutate:    func(r *ListRequest) { r.PageSize = -1 },
			wantField: "page_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ListRequest{}
			req.Normalize()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestReviewRequest_Validate(t *testing.T) {
	comments := "numbers do not add up"

	tests := []struct {
		name      string
		status    string
		comments  *string
		wantField string
	}{
		{name: "approve without comments", status: "approved"},
		{name: "approve with comments", status: "approved", comments: &comments},
		{name: "reject with comments", status: "rejected", comments: &comments},
		{name: "reject without comments", status: "rejected", wantField: "comments"},
		{name: "pending is not a review target", status: "pending", wantField: "status"},
		{name: "unknown status", status: "done", wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ReviewRequest{Status: tt.status, Comments: tt.comments}

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}
