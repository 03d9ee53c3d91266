package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/melonapp/backend-booking/middleware"
	"github.com/melonapp/backend-booking/models"
	"github.com/melonapp/backend-booking/services"
)

type AppointmentHandler struct {
	booking services.BookingEngine
	logger  *zap.Logger
}

func NewAppointmentHandler(booking services.BookingEngine, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		booking: booking,
		logger:  logger,
	}
}

// GetMyAppointments lists the caller's appointments across all businesses.
// The filter defaults to "all".
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	filter := models.AppointmentFilter(c.DefaultQuery("filter", string(models.FilterAll)))
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Unknown filter, expected all, upcoming or past",
		})
		return
	}

	appointments, err := h.booking.ListAppointments(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    appointments,
	})
}

// CreateAppointment runs one booking attempt for the caller.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	appointment, err := h.booking.SubmitBooking(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Appointment booked successfully",
		Data:    appointment,
	})
}

// CancelAppointment cancels one of the caller's appointments, when it is
// still in a cancellable state.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	if err := h.booking.CancelAppointment(c.Request.Context(), middleware.CurrentUser(c), appointmentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Appointment cancelled successfully",
	})
}
