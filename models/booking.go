package models

import "time"

// ReservationOverlay holds the slots reserved during the current booking
// session but not yet reflected in the consultant records. It maps
// consultantID -> DateKey -> slot IDs. Slices keep the overlay JSON-friendly
// for the session store; Add preserves set semantics.
type ReservationOverlay map[string]map[string][]int

// NewReservationOverlay returns an empty overlay.
func NewReservationOverlay() ReservationOverlay {
	return make(ReservationOverlay)
}

// Has reports whether the slot is reserved in this overlay. Absent keys read
// as an empty set.
func (o ReservationOverlay) Has(consultantID, dateKey string, slotID int) bool {
	for _, s := range o[consultantID][dateKey] {
		if s == slotID {
			return true
		}
	}
	return false
}

// Add reserves the slot. Adding an already-present slot is a no-op.
func (o ReservationOverlay) Add(consultantID, dateKey string, slotID int) {
	if o.Has(consultantID, dateKey, slotID) {
		return
	}
	byDate, ok := o[consultantID]
	if !ok {
		byDate = make(map[string][]int)
		o[consultantID] = byDate
	}
	byDate[dateKey] = append(byDate[dateKey], slotID)
}

// ContactDetails is the caller-supplied booking form. The scheduling engine
// treats it as opaque; it is carried onto the appointment record only.
type ContactDetails struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// BookingSession is the state of one in-flight booking flow, cached in Redis
// for the lifetime of the booking page. The overlay inside it is exclusively
// owned by this session; two concurrent sessions are not coordinated.
type BookingSession struct {
	SessionID    string             `json:"sessionId"`
	UserID       string             `json:"userId"`
	ConsultantID string             `json:"consultantId"`
	Window       []string           `json:"window"` // candidate DateKeys, in order
	Overlay      ReservationOverlay `json:"overlay"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// InWindow reports whether the date key is one of the session's candidate
// dates. The window is fixed at session creation.
func (s BookingSession) InWindow(dateKey string) bool {
	for _, d := range s.Window {
		if d == dateKey {
			return true
		}
	}
	return false
}

// DateAvailability pairs a candidate date with its open slots.
type DateAvailability struct {
	Date      string             `json:"date"`
	OpenSlots []ConsultationSlot `json:"openSlots"`
}

// Appointment is a committed reservation written back to the appointment
// store after a successful confirmation.
type Appointment struct {
	ID             string         `bson:"id" json:"id"`
	UserID         string         `bson:"userId" json:"userId"`
	ConsultantID   string         `bson:"consultantId" json:"consultantId"`
	ConsultantName string         `bson:"consultantName" json:"consultantName"`
	Date           string         `bson:"date" json:"date"` // DateKey form
	SlotID         int            `bson:"slotId" json:"slotId"`
	SlotLabel      string         `bson:"slotLabel" json:"slotLabel"`
	Contact        ContactDetails `bson:"contact" json:"contact"`
	Status         string         `bson:"status" json:"status"` // "confirmed"
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID  string `json:"appointmentId"`
	UserID         string `json:"userId"`
	ConsultantName string `json:"consultantName"`
	Date           string `json:"date"`
	SlotLabel      string `json:"slotLabel"`
}
