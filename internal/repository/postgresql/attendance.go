package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, owner_id, month,
			work_hours, transportation_fee,
			attendance_file_ref, transportation_file_ref, comments,
			status, uploaded_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4,
			$5, $6, $7,
			'pending', NOW()
		) RETURNING id, status, uploaded_at
	`

	err := q.QueryRow(ctx, query,
		record.OwnerID, record.Month,
		record.WorkHours, record.TransportationFee,
		record.AttendanceFileRef, record.TransportationFileRef, record.Comments,
	).Scan(&record.ID, &record.Status, &record.UploadedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	record.ReviewerID = nil
	record.ReviewedAt = nil

	return record, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, month,
			   work_hours, transportation_fee,
			   attendance_file_ref, transportation_file_ref, comments,
			   status, reviewer_id, reviewed_at, uploaded_at
		FROM attendance_records
		WHERE id = $1
	`

	var record attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.OwnerID, &record.Month,
		&record.WorkHours, &record.TransportationFee,
		&record.AttendanceFileRef, &record.TransportationFileRef, &record.Comments,
		&record.Status, &record.ReviewerID, &record.ReviewedAt, &record.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, month,
			   work_hours, transportation_fee,
			   attendance_file_ref, transportation_file_ref, comments,
			   status, reviewer_id, reviewed_at, uploaded_at
		FROM attendance_records
		ORDER BY uploaded_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var record attendance.AttendanceRecord
		err := rows.Scan(
			&record.ID, &record.OwnerID, &record.Month,
			&record.WorkHours, &record.TransportationFee,
			&record.AttendanceFileRef, &record.TransportationFileRef, &record.Comments,
			&record.Status, &record.ReviewerID, &record.ReviewedAt, &record.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// MarkReviewed only updates a record whose status is still pending, so of two
// concurrent reviewers exactly one update takes effect.
func (r *attendanceRepositoryImpl) MarkReviewed(ctx context.Context, id string, status attendance.Status, reviewerID string, reviewedAt time.Time, comments *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = $1, reviewer_id = $2, reviewed_at = $3, comments = COALESCE($4, comments)
		WHERE id = $5 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, status, reviewerID, reviewedAt, comments, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance record status: %w", err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	// No row matched: distinguish an unknown id from a lost review race.
	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check attendance record existence: %w", err)
	}
	if !exists {
		return attendance.ErrRecordNotFound
	}
	return attendance.ErrAlreadyReviewed
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string, requesterID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1 AND owner_id = $2`, id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check attendance record existence: %w", err)
	}
	if !exists {
		return attendance.ErrRecordNotFound
	}
	return attendance.ErrForbidden
}
