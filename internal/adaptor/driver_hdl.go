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

type DriverHandler struct {
	service usecase.DriverService
	log     *zap.Logger
}

func NewDriverHandler(service usecase.DriverService, log *zap.Logger) *DriverHandler {
	return &DriverHandler{
		service: service,
		log:     log.With(zap.String("handler", "driver")),
	}
}

// CreateDriver handles POST /api/admin/drivers (admin only)
func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req request.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	driver, err := h.service.CreateDriver(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create driver")
		return
	}

	utils.ResponseCreated(w, "success", driver)
}

// GetDrivers handles GET /api/admin/drivers (admin only)
func (h *DriverHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.GetDrivers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

// GetDriverByID handles GET /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	driver, err := h.service.GetDriverByID(r.Context(), driverID)
	if err != nil {
		handleServiceError(w, h.log, err, "get driver by ID")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// UpdateDriver handles PUT /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	var req request.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	driver, err := h.service.UpdateDriver(r.Context(), driverID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update driver")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// DeleteDriver handles DELETE /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	if err := h.service.DeleteDriver(r.Context(), driverID); err != nil {
		handleServiceError(w, h.log, err, "delete driver")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
