package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/melonapp/backend-booking/models"
	"github.com/melonapp/backend-booking/services"
)

type BusinessHandler struct {
	directory services.Directory
	logger    *zap.Logger
}

func NewBusinessHandler(directory services.Directory, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		directory: directory,
		logger:    logger,
	}
}

// GetBusinesses lists approved businesses, optionally narrowed by name and
// city, best rated first.
func (h *BusinessHandler) GetBusinesses(c *gin.Context) {
	var req models.BusinessSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid search parameters",
		})
		return
	}

	businesses, err := h.directory.SearchBusinesses(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("business search failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    businesses,
	})
}

// GetBusinessByID returns a business together with its bookable services and
// employees, everything the detail page needs in one response.
func (h *BusinessHandler) GetBusinessByID(c *gin.Context) {
	businessID := c.Param("id")
	ctx := c.Request.Context()

	business, err := h.directory.GetBusiness(ctx, businessID)
	if err != nil {
		respondError(c, err)
		return
	}

	businessServices, err := h.directory.ListBookableServices(ctx, businessID)
	if err != nil {
		h.logger.Error("service listing failed", zap.String("business_id", businessID), zap.Error(err))
		respondError(c, err)
		return
	}

	employees, err := h.directory.ListBookableEmployees(ctx, businessID)
	if err != nil {
		h.logger.Error("employee listing failed", zap.String("business_id", businessID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.BusinessDetailResponse{
			Business:  *business,
			Services:  businessServices,
			Employees: employees,
		},
	})
}
