package handlers

import (
	"net/http"
	"time"

	"lawflow/middleware"
	"lawflow/models"
	"lawflow/services/scheduling"
	"lawflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// BookingHandler serves booking admission and lifecycle endpoints.
type BookingHandler struct {
	Engine scheduling.SchedulingEngine
	Cache  *redis.Client
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(engine scheduling.SchedulingEngine, cache *redis.Client) *BookingHandler {
	return &BookingHandler{Engine: engine, Cache: cache}
}

// CreateBooking handles POST /api/availability/:profileId/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	profileID := c.Param("profileId")

	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	booking, err := h.Engine.Reserve(c.Request.Context(), profileID, &sub)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateSlots(c.Request.Context(), h.Cache, profileID)
	c.JSON(http.StatusCreated, booking)
}

// TransitionBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	var req models.BookingTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// Anonymous callers may only cancel as the client. Approving, rejecting,
	// completing, and cancelling on the host's behalf are host decisions.
	clientCancel := req.Status == models.BookingCancelled && req.CancelledBy == models.CancelledByClient
	if !clientCancel && middleware.OwnerID(c) == "" {
		utils.JSONError(c, http.StatusUnauthorized, "host authentication required",
			"only a client cancellation is available without a host token")
		return
	}

	booking, err := h.Engine.TransitionBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateSlots(c.Request.Context(), h.Cache, booking.AvailabilityID)
	c.JSON(http.StatusOK, booking)
}

// ListBookings handles GET /api/availability/:profileId/bookings (host view).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	from, to, err := bookingWindow(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	bookings, err := h.Engine.ListBookings(c.Request.Context(), c.Param("profileId"), from, to, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DeleteBooking handles DELETE /api/bookings/:id (explicit host action).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	booking, err := h.Engine.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateSlots(c.Request.Context(), h.Cache, booking.AvailabilityID)
	c.Status(http.StatusNoContent)
}

func bookingWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 60)

	if q := c.Query("from"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if q := c.Query("to"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}
