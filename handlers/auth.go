package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melonapp/backend-booking/middleware"
	"github.com/melonapp/backend-booking/models"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GetMe echoes the identity verified from the Supabase access token.
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Please login to continue",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    user,
	})
}
