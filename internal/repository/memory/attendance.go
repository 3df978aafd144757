package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

// AttendanceRepository is a mutex-guarded in-memory record store. It applies
// the same compare-and-set discipline as the PostgreSQL store, so the review
// race semantics can be exercised without a database.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.AttendanceRecord
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.AttendanceRecord),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.NewString()
	record.Status = attendance.StatusPending
	record.UploadedAt = time.Now()
	record.ReviewerID = nil
	record.ReviewedAt = nil

	r.records[record.ID] = record.Clone()

	return record, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
	}
	return record.Clone(), nil
}

// List returns the snapshot ordered by upload time, id breaking ties, so
// repeated queries see records in the same order.
func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]attendance.AttendanceRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].UploadedAt.Equal(records[j].UploadedAt) {
			return records[i].UploadedAt.Before(records[j].UploadedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (r *AttendanceRepository) MarkReviewed(ctx context.Context, id string, status attendance.Status, reviewerID string, reviewedAt time.Time, comments *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if record.Status != attendance.StatusPending {
		return attendance.ErrAlreadyReviewed
	}

	record.Status = status
	record.ReviewerID = &reviewerID
	record.ReviewedAt = &reviewedAt
	if comments != nil {
		record.Comments = comments
	}

	r.records[id] = record.Clone()

	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string, requesterID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if record.OwnerID != requesterID {
		return attendance.ErrForbidden
	}

	delete(r.records, id)

	return nil
}
