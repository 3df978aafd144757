package attendance

import (
	"sort"
	"strings"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
)

// RunQuery applies the listing pipeline to a snapshot of records: filter,
// then a stable sort, then pagination. Running it twice over the same
// snapshot yields identical results. The request must be normalized and
// validated by the caller.
func RunQuery(records []attendance.AttendanceRecord, req attendance.ListRequest) attendance.PagedResult {
	filtered := make([]attendance.AttendanceRecord, 0, len(records))
	for _, record := range records {
		if req.MonthContains != "" && !strings.Contains(record.Month, req.MonthContains) {
			continue
		}
		if req.Status != nil && record.Status != *req.Status {
			continue
		}
		filtered = append(filtered, record)
	}

	sortRecords(filtered, req.SortBy, req.SortOrder)

	totalCount := len(filtered)
	pageCount := (totalCount + req.PageSize - 1) / req.PageSize

	items := []attendance.AttendanceRecord{}
	start := (req.Page - 1) * req.PageSize
	if start < totalCount {
		end := start + req.PageSize
		if end > totalCount {
			end = totalCount
		}
		items = filtered[start:end]
	}

	return attendance.PagedResult{
		Items:       items,
		TotalCount:  totalCount,
		PageCount:   pageCount,
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
	}
}

// sortRecords sorts in place. The sort is stable, so records that compare
// equal keep their snapshot order and repeated queries stay deterministic.
func sortRecords(records []attendance.AttendanceRecord, sortBy, sortOrder string) {
	less := lessFunc(records, sortBy)
	if sortOrder == attendance.SortDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(records, less)
}

func lessFunc(records []attendance.AttendanceRecord, sortBy string) func(i, j int) bool {
	switch sortBy {
	case attendance.SortByMonth:
		return func(i, j int) bool { return records[i].Month < records[j].Month }
	case attendance.SortByWorkHours:
		return func(i, j int) bool { return records[i].WorkHours < records[j].WorkHours }
	case attendance.SortByTransportationFee:
		return func(i, j int) bool { return records[i].TransportationFee < records[j].TransportationFee }
	case attendance.SortByStatus:
		return func(i, j int) bool { return records[i].Status.Ordinal() < records[j].Status.Ordinal() }
	default:
		return func(i, j int) bool { return records[i].UploadedAt.Before(records[j].UploadedAt) }
	}
}
