package scheduling

import "fmt"

// SlotConflictError signals an attempt to commit a reservation for a slot
// that is already booked. The UI flow is expected to never offer such a slot,
// so hitting this is a caller bug — but the engine re-checks rather than
// silently double-booking.
type SlotConflictError struct {
	Code         string
	ConsultantID string
	Date         string
	SlotID       int
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: slot %d on %s is already booked for consultant %s",
		e.Code, e.SlotID, e.Date, e.ConsultantID)
}

// NewSlotConflictError builds the conflict error for the given reservation.
func NewSlotConflictError(consultantID, date string, slotID int) error {
	return &SlotConflictError{
		Code:         "slotConflict",
		ConsultantID: consultantID,
		Date:         date,
		SlotID:       slotID,
	}
}
