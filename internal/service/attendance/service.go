package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/service/file"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	fileService    file.FileService
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, fileService file.FileService) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		fileService:    fileService,
	}
}

// mapContextErr translates a context deadline or cancellation buried in err
// into the timeout sentinel, so callers see one error for slow stores.
func mapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return attendance.ErrTimeout
	}
	return err
}

// Submit validates the request, stores the uploaded documents and creates a
// pending record. A failed create removes the stored files again.
func (s *attendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	attendanceRef, err := s.fileService.UploadTimesheet(ctx, req.OwnerID, req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.AttendanceRecord{}, mapContextErr(fmt.Errorf("failed to store attendance file: %w", err))
	}

	record := attendance.AttendanceRecord{
		OwnerID:           req.OwnerID,
		Month:             req.Month,
		WorkHours:         *req.WorkHours,
		TransportationFee: *req.TransportationFee,
		AttendanceFileRef: attendanceRef,
	}

	if req.TransportationFileHeader != nil {
		receiptRef, err := s.fileService.UploadReceipt(ctx, req.OwnerID, req.TransportationFile, req.TransportationFileHeader.Filename)
		if err != nil {
			_ = s.fileService.DeleteFile(ctx, attendanceRef)
			return attendance.AttendanceRecord{}, mapContextErr(fmt.Errorf("failed to store transportation file: %w", err))
		}
		record.TransportationFileRef = &receiptRef
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		_ = s.fileService.DeleteFile(ctx, record.AttendanceFileRef)
		if record.TransportationFileRef != nil {
			_ = s.fileService.DeleteFile(ctx, *record.TransportationFileRef)
		}
		return attendance.AttendanceRecord{}, mapContextErr(fmt.Errorf("failed to create attendance record: %w", err))
	}

	return created, nil
}

// List filters, sorts and paginates over one snapshot of the store, so a
// page never mixes records from different points in time.
func (s *attendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) (attendance.PagedResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return attendance.PagedResult{}, err
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.PagedResult{}, mapContextErr(fmt.Errorf("failed to list attendance records: %w", err))
	}

	return RunQuery(records, req), nil
}

func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceRecord{}, mapContextErr(err)
	}
	return record, nil
}

// ResolveFileRef returns the storage key for one of the record's file slots.
func (s *attendanceServiceImpl) ResolveFileRef(ctx context.Context, id string, kind attendance.FileKind) (string, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return "", mapContextErr(err)
	}

	switch kind {
	case attendance.FileKindTransportation:
		if record.TransportationFileRef == nil {
			return "", attendance.ErrFileSlotEmpty
		}
		return *record.TransportationFileRef, nil
	default:
		return record.AttendanceFileRef, nil
	}
}

// Remove deletes a record and its stored documents. Only the owner may
// remove a record; file cleanup is best-effort once the record is gone.
func (s *attendanceServiceImpl) Remove(ctx context.Context, id string, requesterID string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return mapContextErr(err)
	}

	if err := s.attendanceRepo.Delete(ctx, id, requesterID); err != nil {
		return mapContextErr(err)
	}

	_ = s.fileService.DeleteFile(ctx, record.AttendanceFileRef)
	if record.TransportationFileRef != nil {
		_ = s.fileService.DeleteFile(ctx, *record.TransportationFileRef)
	}

	return nil
}
