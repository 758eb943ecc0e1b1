package notification

import (
	"context"

	"gencare/models"
	"gencare/utils"

	"go.uber.org/zap"
)

// NotificationService is the outbound notification boundary. Actual delivery
// (push, email, SMS) belongs to an external collaborator; the default
// implementation records the events through the structured log.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appointment models.Appointment) error
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService logs notification events.
type DefaultNotificationService struct{}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, appointment models.Appointment) error {
	utils.GetLogger().Info("booking confirmation",
		zap.String("appointmentID", appointment.ID),
		zap.String("userID", appointment.UserID),
		zap.String("consultant", appointment.ConsultantName),
		zap.String("date", appointment.Date),
		zap.String("slot", appointment.SlotLabel),
	)
	return nil
}

func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("userID", payload.UserID),
		zap.String("consultant", payload.ConsultantName),
		zap.String("date", payload.Date),
		zap.String("slot", payload.SlotLabel),
	)
	return nil
}
