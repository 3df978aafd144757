package postgresql

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendanceTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), "TRUNCATE TABLE attendance_records")
	require.NoError(t, err)

	return db
}

func createDBTestRecord(t *testing.T, repo attendance.AttendanceRepository, ownerID string) attendance.AttendanceRecord {
	t.Helper()
	created, err := repo.Create(context.Background(), attendance.AttendanceRecord{
		OwnerID:           ownerID,
		Month:             "2023-05",
		WorkHours:         160,
		TransportationFee: 5000,
		AttendanceFileRef: "timesheets/" + ownerID + "/timesheet.xlsx",
	})
	require.NoError(t, err)
	return created
}

func TestAttendanceRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	repo := NewAttendanceRepository(db)

	created := createDBTestRecord(t, repo, "user-1")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, attendance.StatusPending, created.Status)
	assert.False(t, created.UploadedAt.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "user-1", fetched.OwnerID)
	assert.Equal(t, "2023-05", fetched.Month)
	assert.Nil(t, fetched.ReviewerID)
	assert.Nil(t, fetched.ReviewedAt)
}

func TestAttendanceRepository_MarkReviewed_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	repo := NewAttendanceRepository(db)

	created := createDBTestRecord(t, repo, "user-1")

	comments := "receipts missing"
	require.NoError(t, repo.MarkReviewed(ctx, created.ID, attendance.StatusRejected, "reviewer-1", time.Now(), &comments))

	// Second transition loses: the record is no longer pending.
	err := repo.MarkReviewed(ctx, created.ID, attendance.StatusApproved, "reviewer-2", time.Now(), nil)
	assert.ErrorIs(t, err, attendance.ErrAlreadyReviewed)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusRejected, fetched.Status)
	require.NotNil(t, fetched.ReviewerID)
	assert.Equal(t, "reviewer-1", *fetched.ReviewerID)
	require.NotNil(t, fetched.Comments)
	assert.Equal(t, "receipts missing", *fetched.Comments)
}

func TestAttendanceRepository_MarkReviewed_NotFound(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	repo := NewAttendanceRepository(db)

	err := repo.MarkReviewed(ctx, "00000000-0000-7000-8000-000000000000", attendance.StatusApproved, "reviewer-1", time.Now(), nil)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceRepository_Delete_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	repo := NewAttendanceRepository(db)

	created := createDBTestRecord(t, repo, "user-1")

	err := repo.Delete(ctx, created.ID, "user-2")
	assert.ErrorIs(t, err, attendance.ErrForbidden)

	require.NoError(t, repo.Delete(ctx, created.ID, "user-1"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t)
	repo := NewAttendanceRepository(db)

	errBoom := errors.New("boom")
	var createdID string
	err := WithTransaction(ctx, db, func(txCtx context.Context) error {
		created, err := repo.Create(txCtx, attendance.AttendanceRecord{
			OwnerID:           "user-1",
			Month:             "2023-06",
			WorkHours:         120,
			TransportationFee: 3000,
			AttendanceFileRef: "timesheets/user-1/june.pdf",
		})
		if err != nil {
			return err
		}
		createdID = created.ID
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = repo.GetByID(ctx, createdID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
