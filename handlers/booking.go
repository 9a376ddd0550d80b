package handlers

import (
	"net/http"

	"onboardify/models"
	"onboardify/services/booking"
	"onboardify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes availability lookups and the booking workflow.
type BookingHandler struct {
	Booking      booking.Service
	Availability booking.AvailabilityService
	Logger       *zap.Logger
}

func NewBookingHandler(bookingSvc booking.Service, availability booking.AvailabilityService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Booking: bookingSvc, Availability: availability, Logger: logger}
}

// GetAvailability answers GET /api/booking/availability.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	var q booking.SlotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability query", err.Error())
		return
	}

	result, err := h.Availability.CachedSlotAvailability(c.Request.Context(), q)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Book answers POST /api/booking.
func (h *BookingHandler) Book(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	result, err := h.Booking.Book(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reschedule answers POST /api/booking/reschedule. It is the same pipeline as
// Book, with the previous event ID required so the old appointment gets
// cancelled first.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reschedule request", err.Error())
		return
	}
	if req.ExistingEventID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid reschedule request", "existingEventId is required")
		return
	}

	result, err := h.Booking.Book(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeBookingError maps the booking error taxonomy onto HTTP statuses so
// distinguishable causes never collapse into a generic failure.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch booking.ErrorCode(err) {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	case booking.CodeNoAvailability:
		utils.JSONError(c, http.StatusConflict, "no trainers available for this time slot", err.Error())
	case booking.CodeNoAuthorizedTrainer:
		utils.JSONError(c, http.StatusUnprocessableEntity, "no authorized trainer for this time slot", err.Error())
	case booking.CodeCalendarMutation:
		utils.JSONError(c, http.StatusBadGateway, "calendar booking failed", err.Error())
	default:
		h.Logger.Error("booking pipeline failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}
