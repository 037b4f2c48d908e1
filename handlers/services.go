package handlers

import (
	"net/http"

	"servicehub/models"
	"servicehub/services/registry"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the service registry endpoints.
type ServiceHandler struct {
	Registry registry.RegistryService
	Logger   *zap.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(reg registry.RegistryService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Registry: reg, Logger: logger}
}

// ListServices handles GET /services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Registry.ListServices(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error fetching services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListTopRated handles GET /services/top.
func (h *ServiceHandler) ListTopRated(c *gin.Context) {
	services, err := h.Registry.ListTopRated(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error fetching top services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.Registry.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error fetching service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService handles POST /services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.ServiceInput
	if err := bindJSON(c, &input); err != nil {
		utils.RespondError(c, logger, "Failed to add service", err)
		return
	}

	id, err := h.Registry.CreateService(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, logger, "Failed to add service", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Service added successfully!",
		"serviceId": id,
	})
}

// ListProviderServices handles GET /my-services/:email.
func (h *ServiceHandler) ListProviderServices(c *gin.Context) {
	services, err := h.Registry.ListProviderServices(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error fetching your services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateService handles PUT /services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var update models.ServiceUpdate
	if err := bindJSON(c, &update); err != nil {
		utils.RespondError(c, logger, "Error updating service", err)
		return
	}

	result, err := h.Registry.UpdateService(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, logger, "Error updating service", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteService handles DELETE /services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	result, err := h.Registry.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error deleting service", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetServiceRating handles PATCH /services/:id/rating.
func (h *ServiceHandler) SetServiceRating(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.RatingInput
	if err := bindJSON(c, &input); err != nil {
		utils.RespondError(c, logger, "Error updating service rating", err)
		return
	}

	result, err := h.Registry.SetRating(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, logger, "Error updating service rating", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
