// File: servicehub/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Service registry endpoints
	ListServices         gin.HandlerFunc
	ListTopRatedServices gin.HandlerFunc
	GetService           gin.HandlerFunc
	CreateService        gin.HandlerFunc
	ListProviderServices gin.HandlerFunc
	UpdateService        gin.HandlerFunc
	DeleteService        gin.HandlerFunc
	SetServiceRating     gin.HandlerFunc

	// Booking and rating endpoints
	CreateBooking          gin.HandlerFunc
	ListBookings           gin.HandlerFunc
	DeleteBooking          gin.HandlerFunc
	RateBooking            gin.HandlerFunc
	RecomputeServiceRating gin.HandlerFunc

	// System endpoints
	APIStatus gin.HandlerFunc
	Health    gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the component handlers.
// health may be nil, in which case /health is not served.
func NewHandlerBundle(sh *ServiceHandler, bh *BookingHandler, health *HealthHandler) *HandlerBundle {
	hb := &HandlerBundle{
		ListServices:         sh.ListServices,
		ListTopRatedServices: sh.ListTopRated,
		GetService:           sh.GetService,
		CreateService:        sh.CreateService,
		ListProviderServices: sh.ListProviderServices,
		UpdateService:        sh.UpdateService,
		DeleteService:        sh.DeleteService,
		SetServiceRating:     sh.SetServiceRating,

		CreateBooking:          bh.CreateBooking,
		ListBookings:           bh.ListBookings,
		DeleteBooking:          bh.DeleteBooking,
		RateBooking:            bh.RateBooking,
		RecomputeServiceRating: bh.RecomputeServiceRating,

		APIStatus: APIStatus,
	}
	if health != nil {
		hb.Health = health.Health
	}
	return hb
}
