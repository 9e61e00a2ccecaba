package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/handler/http/response"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	MonthView(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upsert implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = workerID

	record, err := h.attendanceService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", record)
}

// GetDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	date := chi.URLParam(r, "date")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be a valid YYYY-MM-DD value", nil)
		return
	}

	record, err := h.attendanceService.GetDay(r.Context(), workerID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// MonthView implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "month query parameter must be a valid YYYY-MM value", nil)
		return
	}

	view, err := h.attendanceService.MonthView(r.Context(), workerID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), recordID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
