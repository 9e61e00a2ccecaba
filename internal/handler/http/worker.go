package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.workerService.GetWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = workerID

	updated, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", updated)
}

// Delete implements WorkerHandler.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.workerService.DeleteWorker(r.Context(), workerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker and attendance history deleted", nil)
}
