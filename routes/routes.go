package routes

import (
	"time"

	"servicehub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service registry endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/top", hb.ListTopRatedServices)
		api.GET("/:id", hb.GetService)
		api.POST("", hb.CreateService)
		api.PUT("/:id", hb.UpdateService)
		api.DELETE("/:id", hb.DeleteService)
		api.PATCH("/:id/rating", hb.SetServiceRating)
		api.POST("/:id/rating/recompute", hb.RecomputeServiceRating)
	}
	r.GET("/my-services/:email", hb.ListProviderServices)
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.DELETE("/:id", hb.DeleteBooking)
		api.PATCH("/:id/rate", hb.RateBooking)
	}
}

// RegisterHealthRoute registers the liveness and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api", hb.APIStatus)
	if hb.Health != nil {
		r.GET("/health", hb.Health)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// staticDir, when non-empty, is served as a single-page app for unmatched GETs.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, staticDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSPA(r, staticDir)
}
