package appointmentRepo

import "gencare/models"

// AppointmentRepository stores committed appointments and serves the
// dashboard views.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByUser(userID string) ([]models.Appointment, error)
	GetByConsultant(consultantID string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)
}
