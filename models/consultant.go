package models

// Consultant is a bookable care professional together with the booked-shift
// table used for availability lookups. BookedShifts maps a DateKey
// ("6/6/2025") to the slot IDs already taken on that day; it reflects the
// source of truth and is never mutated by the scheduling engine directly —
// session-local reservations live in a ReservationOverlay until written back.
type Consultant struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	Specialty    string           `bson:"specialty" json:"specialty"`
	Title        string           `bson:"title,omitempty" json:"title,omitempty"`
	Bio          string           `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL    string           `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Status       string           `bson:"status" json:"status"` // "active" or "inactive"
	BookedShifts map[string][]int `bson:"bookedShifts" json:"bookedShifts"`
}

// ConsultantDTO is the public projection used in listing responses.
type ConsultantDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Title     string `json:"title,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ToConsultantDTO strips the schedule table from a consultant record.
func ToConsultantDTO(c Consultant) ConsultantDTO {
	return ConsultantDTO{
		ID:        c.ID,
		Name:      c.Name,
		Specialty: c.Specialty,
		Title:     c.Title,
		AvatarURL: c.AvatarURL,
	}
}

// HasBookedShift reports whether the given slot is taken in the consultant's
// own booked-shift table. Absent date keys read as an empty set.
func (c Consultant) HasBookedShift(dateKey string, slotID int) bool {
	for _, s := range c.BookedShifts[dateKey] {
		if s == slotID {
			return true
		}
	}
	return false
}
