package scheduling

import (
	"time"

	"gencare/models"
)

// Engine computes booking availability for a consultant over a calendar
// window and commits session-local reservations. It is a pure function of the
// consultant record and the session's reservation overlay: it holds no state
// of its own and performs no I/O, so a single instance is safe to share.
type Engine struct{}

// NewEngine returns the availability engine.
func NewEngine() *Engine {
	return &Engine{}
}

// CandidateWindow enumerates windowLengthDays consecutive date keys starting
// at today inclusive.
func (e *Engine) CandidateWindow(today time.Time, windowLengthDays int) []string {
	dayZero := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	keys := make([]string, 0, windowLengthDays)
	for i := 0; i < windowLengthDays; i++ {
		keys = append(keys, models.DateKey(dayZero.AddDate(0, 0, i)))
	}
	return keys
}

// IsSlotBooked reports whether the slot is taken on that date, either in the
// consultant's booked-shift table or in the session overlay. Absent keys in
// either mapping read as an empty set, never an error.
func (e *Engine) IsSlotBooked(consultant models.Consultant, overlay models.ReservationOverlay, dateKey string, slotID int) bool {
	if consultant.HasBookedShift(dateKey, slotID) {
		return true
	}
	return overlay.Has(consultant.ID, dateKey, slotID)
}

// OpenSlots returns the catalog entries still bookable on the given date,
// in catalog order.
func (e *Engine) OpenSlots(consultant models.Consultant, overlay models.ReservationOverlay, dateKey string) []models.ConsultationSlot {
	var open []models.ConsultationSlot
	for _, slot := range models.SlotCatalog {
		if !e.IsSlotBooked(consultant, overlay, dateKey, slot.ID) {
			open = append(open, slot)
		}
	}
	return open
}

// HasAvailableSlot reports whether at least one catalog slot is open on the
// given date.
func (e *Engine) HasAvailableSlot(consultant models.Consultant, overlay models.ReservationOverlay, dateKey string) bool {
	for _, slot := range models.SlotCatalog {
		if !e.IsSlotBooked(consultant, overlay, dateKey, slot.ID) {
			return true
		}
	}
	return false
}

// FilterAvailableDates returns the sub-sequence of window dates that still
// have at least one open slot, preserving window order. A fully booked window
// yields an empty result; the caller renders that as "no available dates"
// rather than treating it as a failure.
func (e *Engine) FilterAvailableDates(window []string, consultant models.Consultant, overlay models.ReservationOverlay) []string {
	var available []string
	for _, dateKey := range window {
		if e.HasAvailableSlot(consultant, overlay, dateKey) {
			available = append(available, dateKey)
		}
	}
	return available
}

// CommitReservation records the reservation in the session overlay. The UI
// flow checks availability before offering a slot, but the engine re-checks
// here and returns a SlotConflictError instead of double-booking. Committing
// a slot the overlay already holds is a no-op.
func (e *Engine) CommitReservation(consultant models.Consultant, overlay models.ReservationOverlay, dateKey string, slotID int) error {
	if _, ok := models.SlotByID(slotID); !ok {
		return NewSlotConflictError(consultant.ID, dateKey, slotID)
	}
	if consultant.HasBookedShift(dateKey, slotID) {
		return NewSlotConflictError(consultant.ID, dateKey, slotID)
	}
	overlay.Add(consultant.ID, dateKey, slotID)
	return nil
}
