package routes

import (
	"github.com/gin-gonic/gin"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/melonapp/backend-booking/config"
	"github.com/melonapp/backend-booking/handlers"
	"github.com/melonapp/backend-booking/middleware"
	"github.com/melonapp/backend-booking/services"
)

func SetupRoutes(router *gin.Engine, supabaseClient *supa.Client, cfg *config.Config, logger *zap.Logger) {
	store := services.NewSupabaseStore(supabaseClient)
	bookingService := services.NewBookingService(store, store, logger)

	authHandler := handlers.NewAuthHandler()
	businessHandler := handlers.NewBusinessHandler(store, logger)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes - business discovery (no auth required)
		v1.GET("/businesses", businessHandler.GetBusinesses)
		v1.GET("/businesses/:id", businessHandler.GetBusinessByID)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			appointments := protected.Group("/appointments")
			{
				appointments.GET("", appointmentHandler.GetMyAppointments)
				appointments.POST("", appointmentHandler.CreateAppointment)
				appointments.POST("/:id/cancel", appointmentHandler.CancelAppointment)
			}
		}
	}
}
