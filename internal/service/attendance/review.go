package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/domain/user"
)

// Review transitions a pending record to approved or rejected. A record
// already in a terminal state reports ErrAlreadyReviewed to every caller,
// reviewer or not; only pending records go through the role gate. The
// transition is a compare-and-set in the store, so of two concurrent reviews
// exactly one wins and the loser also observes ErrAlreadyReviewed.
func (s *attendanceServiceImpl) Review(ctx context.Context, req attendance.ReviewRequest) (attendance.AttendanceRecord, error) {
	record, err := s.attendanceRepo.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceRecord{}, mapContextErr(err)
	}
	if record.Status.IsTerminal() {
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyReviewed
	}

	if !req.Role.IsReviewer() {
		return attendance.AttendanceRecord{}, user.ErrReviewerAccessRequired
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	err = s.attendanceRepo.MarkReviewed(ctx, req.RecordID, req.Target(), req.ReviewerID, time.Now(), req.Comments)
	if err != nil {
		return attendance.AttendanceRecord{}, mapContextErr(fmt.Errorf("failed to review attendance record: %w", err))
	}

	record, err = s.attendanceRepo.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceRecord{}, mapContextErr(fmt.Errorf("failed to load reviewed record: %w", err))
	}

	return record, nil
}
