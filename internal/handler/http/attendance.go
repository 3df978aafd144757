package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/chiliososada/ems-backend-go/internal/domain/attendance"
	"github.com/chiliososada/ems-backend-go/internal/handler/http/middleware"
	"github.com/chiliososada/ems-backend-go/internal/handler/http/response"
	"github.com/chiliososada/ems-backend-go/internal/pkg/validator"
	"github.com/chiliososada/ems-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	fileService       file.FileService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, fileService file.FileService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		fileService:       fileService,
	}
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req attendance.SubmitRequest

	// Parse multipart form (two documents of up to 20MB each)
	if err := r.ParseMultipartForm(42 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get JSON data from 'data' field
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OwnerID = caller.UserID

	// The attendance document itself; its absence is reported by Validate
	// so the caller sees the usual field/reason pair.
	attendanceFile, attendanceHeader, err := r.FormFile("attendance_file")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get attendance file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer attendanceFile.Close()
		req.File = attendanceFile
		req.FileHeader = attendanceHeader
	}

	// Optional transportation receipt
	transportationFile, transportationHeader, err := r.FormFile("transportation_file")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get transportation file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer transportationFile.Close()
		req.TransportationFile = transportationFile
		req.TransportationFileHeader = transportationHeader
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := attendance.ListRequest{
		MonthContains: r.URL.Query().Get("month"),
		SortBy:        r.URL.Query().Get("sort_by"),
		SortOrder:     r.URL.Query().Get("sort_order"),
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, ok := attendance.ParseStatus(statusStr)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be pending, approved or rejected",
			}})
			return
		}
		req.Status = &status
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.BadRequest(w, "Invalid page parameter", nil)
			return
		}
		req.Page = page
	}

	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil {
			response.BadRequest(w, "Invalid page_size parameter", nil)
			return
		}
		req.PageSize = pageSize
	}

	result, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Download implements AttendanceHandler. The type query parameter picks the
// file slot; the attendance document is the default.
func (h *attendanceHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	kind := attendance.FileKindAttendance
	if kindStr := r.URL.Query().Get("type"); kindStr != "" {
		parsed, ok := attendance.ParseFileKind(kindStr)
		if !ok {
			response.BadRequest(w, "Invalid type parameter", nil)
			return
		}
		kind = parsed
	}

	ref, err := h.attendanceService.ResolveFileRef(r.Context(), id, kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reader, err := h.fileService.DownloadFile(r.Context(), ref)
	if err != nil {
		slog.Error("Failed to open stored document", "ref", ref, "error", err)
		response.NotFound(w, "Stored document is missing")
		return
	}
	defer reader.Close()

	filename := path.Base(ref)
	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream stored document", "ref", ref, "error", err)
	}
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Remove(r.Context(), id, caller.UserID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// Review implements AttendanceHandler.
func (h *attendanceHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req attendance.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")
	req.ReviewerID = caller.UserID
	req.Role = caller.Role

	result, err := h.attendanceService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record reviewed", result)
}
