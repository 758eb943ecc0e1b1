package models

import (
	"fmt"
	"time"
)

// ConsultationSlot represents one of the four fixed daily 2-hour shifts.
type ConsultationSlot struct {
	ID        int    `bson:"id" json:"id"`
	Label     string `bson:"label" json:"label"`
	StartTime string `bson:"startTime" json:"startTime"` // "08:00"
	EndTime   string `bson:"endTime" json:"endTime"`     // "10:00"
}

// SlotCatalog is the fixed ordered catalog of daily consultation shifts.
// It is identical for every consultant and every date.
var SlotCatalog = []ConsultationSlot{
	{ID: 0, Label: "08:00 - 10:00", StartTime: "08:00", EndTime: "10:00"},
	{ID: 1, Label: "10:00 - 12:00", StartTime: "10:00", EndTime: "12:00"},
	{ID: 2, Label: "13:00 - 15:00", StartTime: "13:00", EndTime: "15:00"},
	{ID: 3, Label: "15:00 - 17:00", StartTime: "15:00", EndTime: "17:00"},
}

// SlotByID looks up a catalog entry. The second return is false for IDs
// outside the catalog.
func SlotByID(id int) (ConsultationSlot, bool) {
	if id < 0 || id >= len(SlotCatalog) {
		return ConsultationSlot{}, false
	}
	return SlotCatalog[id], true
}

// DateKey formats a calendar day as day/month/year without zero padding,
// e.g. "6/6/2025". Booked-shift tables are keyed in exactly this format, so
// every producer of lookup keys must go through here.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
