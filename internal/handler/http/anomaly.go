package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/handler/http/response"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

type AnomalyHandler interface {
	RunDetection(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	ListReports(w http.ResponseWriter, r *http.Request)
}

type AnomalyHandlerImpl struct {
	anomalyService anomaly.AnomalyService
}

func NewAnomalyHandler(anomalyService anomaly.AnomalyService) AnomalyHandler {
	return &AnomalyHandlerImpl{anomalyService: anomalyService}
}

// RunDetection implements AnomalyHandler.
func (h *AnomalyHandlerImpl) RunDetection(w http.ResponseWriter, r *http.Request) {
	var req anomaly.RunDetectionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RunDetection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	report, err := h.anomalyService.RunDetection(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Anomaly detection completed", report)
}

// GetReport implements AnomalyHandler.
func (h *AnomalyHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")
	if workerID == "" {
		response.BadRequest(w, "worker_id query parameter is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "month query parameter must be a valid YYYY-MM value", nil)
		return
	}

	report, err := h.anomalyService.GetReport(r.Context(), workerID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ListReports implements AnomalyHandler.
func (h *AnomalyHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.anomalyService.ListReports(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
