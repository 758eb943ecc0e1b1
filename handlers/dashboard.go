package handlers

import (
	"net/http"

	appointmentRepo "gencare/database/repository/appointment"
	"gencare/middleware"
	"gencare/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the staff-tier operational views.
type DashboardHandler struct {
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Appointments: repo, Logger: logger}
}

// ListAppointments returns committed appointments, optionally filtered by
// consultant.
func (h *DashboardHandler) ListAppointments(c *gin.Context) {
	var (
		appointments []models.Appointment
		err          error
	)
	if consultantID := c.Query("consultantId"); consultantID != "" {
		appointments, err = h.Appointments.GetByConsultant(consultantID)
	} else {
		appointments, err = h.Appointments.GetAll()
	}
	if err != nil {
		h.Logger.Error("failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// MyAppointments returns the authenticated user's own appointments.
func (h *DashboardHandler) MyAppointments(c *gin.Context) {
	userID := middleware.GetSession(c).UserID
	appointments, err := h.Appointments.GetByUser(userID)
	if err != nil {
		h.Logger.Error("failed to list user appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
