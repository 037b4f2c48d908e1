package handlers

import (
	"net/http"

	"servicehub/models"
	"servicehub/services/booking"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking and rating aggregation endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CreateBooking handles POST /bookings. Any JSON object is accepted.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var b models.Booking
	if err := bindJSON(c, &b); err != nil {
		utils.RespondError(c, logger, "Error saving booking", err)
		return
	}

	id, err := h.BookingSvc.CreateBooking(c.Request.Context(), b)
	if err != nil {
		utils.RespondError(c, logger, "Error saving booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": id})
}

// ListBookings handles GET /bookings?email=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error fetching bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	result, err := h.BookingSvc.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error deleting booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RateBooking handles PATCH /bookings/:id/rate.
func (h *BookingHandler) RateBooking(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.RatingInput
	if err := bindJSON(c, &input); err != nil {
		utils.RespondError(c, logger, "Error rating booking", err)
		return
	}

	result, err := h.BookingSvc.RateBooking(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, logger, "Error rating booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecomputeServiceRating handles POST /services/:id/rating/recompute.
func (h *BookingHandler) RecomputeServiceRating(c *gin.Context) {
	summary, err := h.BookingSvc.RecomputeServiceRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), "Error recomputing service rating", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
