package routes

import (
	"net/http"
	"time"

	"onboardify/handlers"
	"onboardify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/availability", hb.Booking.GetAvailability)

		// Staff-only operations.
		protected := bookingGroup.Group("")
		protected.Use(middleware.StaffAuthMiddleware())
		protected.POST("", hb.Booking.Book)
		protected.POST("/reschedule", hb.Booking.Reschedule)
	}
}

// RegisterTrainerRoutes registers trainer management and calendar
// authorization endpoints.
func RegisterTrainerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trainers")
	{
		// The OAuth callback is hit by Google, not by an authenticated staff
		// session, so it stays public.
		api.GET("/calendar/callback", hb.Trainer.CalendarCallback)

		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware())
		protected.GET("", hb.Trainer.ListTrainers)
		protected.GET("/:id/availability", hb.Trainer.GetTrainerAvailability)
		protected.GET("/:id/calendar/connect", hb.Trainer.ConnectCalendar)
		protected.DELETE("/:id/calendar", hb.Trainer.RevokeCalendar)
	}
}

// RegisterMerchantRoutes registers merchant onboarding record endpoints.
func RegisterMerchantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/merchants")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.POST("", hb.Merchant.CreateMerchant)
		api.GET("/:id", hb.Merchant.GetMerchant)
		api.PATCH("/:id", hb.Merchant.UpdateMerchant)
		api.GET("/:id/progress", hb.Merchant.GetProgress)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "onboardify is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterTrainerRoutes(r, hb)
	RegisterMerchantRoutes(r, hb)
}
