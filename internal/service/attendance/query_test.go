package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listRequest(mutate func(*attendance.ListRequest)) attendance.ListRequest {
	req := attendance.ListRequest{}
	req.Normalize()
	if mutate != nil {
		mutate(&req)
	}
	return req
}

func snapshotRecords(n int) []attendance.AttendanceRecord {
	base := time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
	records := make([]attendance.AttendanceRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, attendance.AttendanceRecord{
			ID:                fmt.Sprintf("record-%02d", i),
			OwnerID:           "user-1",
			Month:             fmt.Sprintf("2023-%02d", i%12+1),
			WorkHours:         float64(100 + i),
			TransportationFee: float64(1000 * (i % 5)),
			Status:            attendance.StatusPending,
			UploadedAt:        base.Add(time.Duration(i) * time.Hour),
		})
	}
	return records
}

func TestRunQuery_Pagination(t *testing.T) {
	records := snapshotRecords(20)

	page1 := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.PageSize = 9
	}))
	assert.Equal(t, 20, page1.TotalCount)
	assert.Equal(t, 3, page1.PageCount)
	assert.Equal(t, 1, page1.CurrentPage)
	assert.Len(t, page1.Items, 9)

	page3 := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.PageSize = 9
		r.Page = 3
	}))
	assert.Len(t, page3.Items, 2)

	// A page past the end is empty, not an error; the metadata still
	// describes the full result set.
	page4 := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.PageSize = 9
		r.Page = 4
	}))
	assert.Empty(t, page4.Items)
	assert.Equal(t, 20, page4.TotalCount)
	assert.Equal(t, 3, page4.PageCount)
	assert.Equal(t, 4, page4.CurrentPage)
	assert.Equal(t, 9, page4.PageSize)
}

func TestRunQuery_EmptySnapshot(t *testing.T) {
	result := RunQuery(nil, listRequest(nil))

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0, result.PageCount)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestRunQuery_SortWorkHours(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{ID: "b", WorkHours: 2, Month: "2023-02"},
		{ID: "a", WorkHours: 1, Month: "2023-01"},
	}

	asc := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.SortBy = attendance.SortByWorkHours
		r.SortOrder = attendance.SortAsc
	}))
	require.Len(t, asc.Items, 2)
	assert.Equal(t, []float64{1, 2}, []float64{asc.Items[0].WorkHours, asc.Items[1].WorkHours})

	desc := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.SortBy = attendance.SortByWorkHours
		r.SortOrder = attendance.SortDesc
	}))
	require.Len(t, desc.Items, 2)
	assert.Equal(t, []float64{2, 1}, []float64{desc.Items[0].WorkHours, desc.Items[1].WorkHours})
}

func TestRunQuery_DefaultSortIsUploadDateDesc(t *testing.T) {
	records := snapshotRecords(3)

	result := RunQuery(records, listRequest(nil))

	require.Len(t, result.Items, 3)
	assert.Equal(t, "record-02", result.Items[0].ID)
	assert.Equal(t, "record-00", result.Items[2].ID)
}

func TestRunQuery_SortStatusOrdinal(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{ID: "r", Status: attendance.StatusRejected},
		{ID: "p", Status: attendance.StatusPending},
		{ID: "a", Status: attendance.StatusApproved},
	}

	result := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.SortBy = attendance.SortByStatus
		r.SortOrder = attendance.SortAsc
	}))

	require.Len(t, result.Items, 3)
	assert.Equal(t, "p", result.Items[0].ID)
	assert.Equal(t, "a", result.Items[1].ID)
	assert.Equal(t, "r", result.Items[2].ID)
}

func TestRunQuery_StableOnEqualKeys(t *testing.T) {
	// All records share the same month; a sort on month must keep the
	// snapshot order on both directions.
	records := []attendance.AttendanceRecord{
		{ID: "first", Month: "2023-05"},
		{ID: "second", Month: "2023-05"},
		{ID: "third", Month: "2023-05"},
	}

	for _, order := range []string{attendance.SortAsc, attendance.SortDesc} {
		result := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
			r.SortBy = attendance.SortByMonth
			r.SortOrder = order
		}))
		require.Len(t, result.Items, 3)
		assert.Equal(t, "first", result.Items[0].ID, "order %s", order)
		assert.Equal(t, "second", result.Items[1].ID, "order %s", order)
		assert.Equal(t, "third", result.Items[2].ID, "order %s", order)
	}
}

func TestRunQuery_FilterMonthContains(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{ID: "a", Month: "2023-05"},
		{ID: "b", Month: "2023-06"},
		{ID: "c", Month: "2024-05"},
	}

	result := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.MonthContains = "-05"
	}))

	assert.Equal(t, 2, result.TotalCount)
	for _, item := range result.Items {
		assert.Contains(t, item.Month, "-05")
	}
}

func TestRunQuery_FilterStatus(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{ID: "a", Status: attendance.StatusPending},
		{ID: "b", Status: attendance.StatusApproved},
		{ID: "c", Status: attendance.StatusPending},
	}

	status := attendance.StatusPending
	result := RunQuery(records, listRequest(func(r *attendance.ListRequest) {
		r.Status = &status
	}))

	assert.Equal(t, 2, result.TotalCount)
	for _, item := range result.Items {
		assert.Equal(t, attendance.StatusPending, item.Status)
	}
}

func TestRunQuery_Deterministic(t *testing.T) {
	records := snapshotRecords(20)
	req := listRequest(func(r *attendance.ListRequest) {
		r.SortBy = attendance.SortByMonth
		r.SortOrder = attendance.SortAsc
		r.PageSize = 7
		r.Page = 2
	})

	first := RunQuery(records, req)
	second := RunQuery(records, req)

	assert.Equal(t, first, second)
}
