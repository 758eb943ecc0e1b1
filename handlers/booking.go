package handlers

import (
	"errors"
	"net/http"

	"gencare/middleware"
	"gencare/models"
	"gencare/services/booking"
	"gencare/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the consultation-booking flow.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession starts a booking session for a consultant.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ConsultantID string `json:"consultantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session := middleware.GetSession(c)
	state, err := h.Service.InitiateSession(session.UserID, input.ConsultantID)
	if err != nil {
		h.Logger.Error("failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate booking session"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetAvailability returns the current available dates and open slots for a
// session. An empty availableDates list is a normal response, not an error.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	sessionID := c.Param("sessionID")

	state, err := h.Service.GetAvailability(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ConfirmBooking commits a reservation for the session.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date    string                `json:"date" binding:"required"`
		SlotID  *int                  `json:"slotId" binding:"required"`
		Contact models.ContactDetails `json:"contact" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appointment, err := h.Service.ConfirmBooking(sessionID, input.Date, *input.SlotID, input.Contact)
	if err != nil {
		if errors.Is(err, booking.ErrDateOutsideWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is outside the booking window"})
			return
		}
		var conflict *scheduling.SlotConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot is no longer available"})
			return
		}
		h.Logger.Error("failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// CancelSession abandons an in-flight booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
