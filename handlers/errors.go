package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melonapp/backend-booking/models"
	"github.com/melonapp/backend-booking/services"
)

// respondError maps workflow errors onto HTTP statuses. Persistence failures
// carry the underlying message so the caller can show it verbatim.
func respondError(c *gin.Context, err error) {
	var invalidSelection *services.InvalidSelectionError
	var persistence *services.PersistenceError

	switch {
	case errors.Is(err, services.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Please login to continue",
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Not found",
		})
	case errors.Is(err, services.ErrNotCancellable):
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "This appointment can no longer be cancelled",
		})
	case errors.As(err, &invalidSelection):
		c.JSON(http.StatusUnprocessableEntity, models.Response{
			Success: false,
			Error:   invalidSelection.Error(),
		})
	case errors.As(err, &persistence):
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   persistence.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   err.Error(),
		})
	}
}
