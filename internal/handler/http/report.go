package http

import (
	"net/http"

	"github.com/wagewise/wagewise-backend-go/internal/domain/report"
	"github.com/wagewise/wagewise-backend-go/internal/handler/http/response"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	Wages(w http.ResponseWriter, r *http.Request)
	Leaves(w http.ResponseWriter, r *http.Request)
	Expenditure(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Wages implements ReportHandler. With so_far=true the figures are bounded to
// dates up to and including today.
func (h *ReportHandlerImpl) Wages(w http.ResponseWriter, r *http.Request) {
	workerID, month, ok := workerMonthParams(w, r)
	if !ok {
		return
	}

	var (
		summary report.WageSummary
		err     error
	)
	if r.URL.Query().Get("so_far") == "true" {
		summary, err = h.reportService.WageSummarySoFar(r.Context(), workerID, month)
	} else {
		summary, err = h.reportService.WageSummary(r.Context(), workerID, month)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Leaves implements ReportHandler.
func (h *ReportHandlerImpl) Leaves(w http.ResponseWriter, r *http.Request) {
	workerID, month, ok := workerMonthParams(w, r)
	if !ok {
		return
	}

	summary, err := h.reportService.LeaveSummary(r.Context(), workerID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Expenditure implements ReportHandler.
func (h *ReportHandlerImpl) Expenditure(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "month query parameter must be a valid YYYY-MM value", nil)
		return
	}

	summary, err := h.reportService.ExpenditureSummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func workerMonthParams(w http.ResponseWriter, r *http.Request) (workerID, month string, ok bool) {
	workerID = r.URL.Query().Get("worker_id")
	if workerID == "" {
		response.BadRequest(w, "worker_id query parameter is required", nil)
		return "", "", false
	}

	month = r.URL.Query().Get("month")
	if _, valid := validator.IsValidMonth(month); !valid {
		response.BadRequest(w, "month query parameter must be a valid YYYY-MM value", nil)
		return "", "", false
	}

	return workerID, month, true
}
