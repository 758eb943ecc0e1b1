package booking

import (
	appointmentRepo "gencare/database/repository/appointment"
	consultantRepo "gencare/database/repository/consultant"
	"gencare/models"
	"gencare/services/notification"
	"gencare/services/scheduling"

	"github.com/hibiken/asynq"
)

// BookingSessionService manages a stateful consultation-booking flow. One
// session corresponds to one booking page instance; its reservation overlay
// is owned exclusively by that session.
type BookingSessionService interface {
	InitiateSession(userID, consultantID string) (*SessionState, error)
	GetAvailability(sessionID string) (*SessionState, error)
	ConfirmBooking(sessionID, dateKey string, slotID int, contact models.ContactDetails) (*models.Appointment, error)
	CancelSession(sessionID string) error
}

// SessionState is the client-facing view of a booking session: the candidate
// window filtered down to dates that still have open slots.
type SessionState struct {
	SessionID      string                    `json:"sessionId"`
	ConsultantID   string                    `json:"consultantId"`
	AvailableDates []models.DateAvailability `json:"availableDates"`
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	ConsultantRepo  consultantRepo.ConsultantRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Engine          *scheduling.Engine
	NotificationSvc notification.NotificationService
	ReminderClient  *asynq.Client
	WindowDays      int
}
