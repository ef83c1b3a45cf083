package adaptor

import (
	"encoding/json"
	"net/http"

	"truck-booking/internal/dto/request"
	"truck-booking/internal/usecase"
	"truck-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TruckHandler struct {
	service usecase.TruckService
	log     *zap.Logger
}

func NewTruckHandler(service usecase.TruckService, log *zap.Logger) *TruckHandler {
	return &TruckHandler{
		service: service,
		log:     log.With(zap.String("handler", "truck")),
	}
}

// CreateTruck handles POST /api/admin/trucks (admin only)
func (h *TruckHandler) CreateTruck(w http.ResponseWriter, r *http.Request) {
	var req request.TruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	truck, err := h.service.CreateTruck(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create truck")
		return
	}

	utils.ResponseCreated(w, "success", truck)
}

// GetTrucks handles GET /api/admin/trucks (admin only)
// Supports an optional ?status= availability filter.
func (h *TruckHandler) GetTrucks(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	trucks, err := h.service.GetTrucks(r.Context(), statusFilter)
	if err != nil {
		handleServiceError(w, h.log, err, "get trucks")
		return
	}

	utils.ResponseSuccess(w, "success", trucks)
}

// GetTruckByID handles GET /api/admin/trucks/{id} (admin only)
func (h *TruckHandler) GetTruckByID(w http.ResponseWriter, r *http.Request) {
	truckID := chi.URLParam(r, "id")
	if truckID == "" {
		utils.ResponseBadRequest(w, "Truck ID is required", nil)
		return
	}

	truck, err := h.service.GetTruckByID(r.Context(), truckID)
	if err != nil {
		handleServiceError(w, h.log, err, "get truck by ID")
		return
	}

	utils.ResponseSuccess(w, "success", truck)
}

// UpdateTruck handles PUT /api/admin/trucks/{id} (admin only)
func (h *TruckHandler) UpdateTruck(w http.ResponseWriter, r *http.Request) {
	truckID := chi.URLParam(r, "id")
	if truckID == "" {
		utils.ResponseBadRequest(w, "Truck ID is required", nil)
		return
	}

	var req request.TruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	truck, err := h.service.UpdateTruck(r.Context(), truckID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update truck")
		return
	}

	utils.ResponseSuccess(w, "success", truck)
}

// DeleteTruck handles DELETE /api/admin/trucks/{id} (admin only)
func (h *TruckHandler) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	truckID := chi.URLParam(r, "id")
	if truckID == "" {
		utils.ResponseBadRequest(w, "Truck ID is required", nil)
		return
	}

	if err := h.service.DeleteTruck(r.Context(), truckID); err != nil {
		handleServiceError(w, h.log, err, "delete truck")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
