package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// owns identity, status and timestamps; mutations are atomic per record.
type AttendanceRepository interface {
	// Create persists a new record and returns it with the assigned id.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a record, or ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// List returns a snapshot of all records ordered by upload time with
	// id as tie-breaker, so identical queries paginate identically; the
	// query engine sorts and paginates on top.
	List(ctx context.Context) ([]AttendanceRecord, error)

	// MarkReviewed transitions a pending record to a terminal status. The
	// update is conditional on status still being pending, so of two
	// concurrent reviewers exactly one wins; the loser gets
	// ErrAlreadyReviewed.
	MarkReviewed(ctx context.Context, id string, status Status, reviewerID string, reviewedAt time.Time, comments *string) error

	// Delete removes a record. Only the owner may delete; a requester
	// mismatch yields ErrForbidden.
	Delete(ctx context.Context, id string, requesterID string) error
}

// AttendanceService is the operation set external collaborators call.
type AttendanceService interface {
	Submit(ctx context.Context, req SubmitRequest) (AttendanceRecord, error)
	List(ctx context.Context, req ListRequest) (PagedResult, error)
	Get(ctx context.Context, id string) (AttendanceRecord, error)
	ResolveFileRef(ctx context.Context, id string, kind FileKind) (string, error)
	Remove(ctx context.Context, id string, requesterID string) error
	Review(ctx context.Context, req ReviewRequest) (AttendanceRecord, error)
}
