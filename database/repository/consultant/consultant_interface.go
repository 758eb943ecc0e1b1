package consultantRepo

import "gencare/models"

// ConsultantRepository provides read access to consultant schedule records
// and the write-back applied after a confirmed booking.
type ConsultantRepository interface {
	GetByID(id string) (*models.Consultant, error)
	GetAll() ([]models.Consultant, error)
	GetBySpecialty(specialty string) ([]models.Consultant, error)
	// AddBookedShift appends a slot to the consultant's booked-shift table
	// for the given date key. Adding an already-present slot is a no-op.
	AddBookedShift(id, dateKey string, slotID int) error
}
