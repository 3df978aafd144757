package attendance

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus maps a string to a known status. Unknown values come back with
// ok=false; there is no fallthrough "unknown" status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Ordinal returns the numeric encoding of a status (pending=0, approved=1,
// rejected=2). Sorting by status uses this ordering.
func (s Status) Ordinal() int {
	switch s {
	case StatusPending:
		return 0
	case StatusApproved:
		return 1
	case StatusRejected:
		return 2
	}
	return -1
}

// IsTerminal checks if the status permits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// FileKind selects one of the two file slots on a record.
type FileKind string

const (
	FileKindAttendance     FileKind = "attendance"     // Mandatory timesheet file
	FileKindTransportation FileKind = "transportation" // Optional expense receipt
)

func ParseFileKind(s string) (FileKind, bool) {
	switch FileKind(s) {
	case FileKindAttendance, FileKindTransportation:
		return FileKind(s), true
	}
	return "", false
}

// AttendanceRecord is one submitted monthly timesheet with its review status.
// The record store owns the canonical copy; everything else works on copies.
type AttendanceRecord struct {
	ID                    string     `json:"id"`
	OwnerID               string     `json:"owner_id"`
	Month                 string     `json:"month"` // YYYY-MM, immutable after creation
	WorkHours             float64    `json:"work_hours"`
	TransportationFee     float64    `json:"transportation_fee"`
	AttendanceFileRef     string     `json:"attendance_file_ref"`
	TransportationFileRef *string    `json:"transportation_file_ref,omitempty"`
	Comments              *string    `json:"comments,omitempty"`
	Status                Status     `json:"status"`
	ReviewerID            *string    `json:"reviewer_id,omitempty"`
	ReviewedAt            *time.Time `json:"reviewed_at,omitempty"`
	UploadedAt            time.Time  `json:"uploaded_at"`
}

// Clone returns a deep copy so callers never share pointers with the store.
func (r AttendanceRecord) Clone() AttendanceRecord {
	clone := r
	if r.TransportationFileRef != nil {
		v := *r.TransportationFileRef
		clone.TransportationFileRef = &v
	}
	if r.Comments != nil {
		v := *r.Comments
		clone.Comments = &v
	}
	if r.ReviewerID != nil {
		v := *r.ReviewerID
		clone.ReviewerID = &v
	}
	if r.ReviewedAt != nil {
		v := *r.ReviewedAt
		clone.ReviewedAt = &v
	}
	return clone
}
