package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"gencare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderFireTime(t *testing.T) {
	future := time.Now().AddDate(0, 0, 10)
	dateKey := models.DateKey(future)

	fireAt, ok := ReminderFireTime(dateKey, "08:00")
	require.True(t, ok)

	start := time.Date(future.Year(), future.Month(), future.Day(), 8, 0, 0, 0, time.Local)
	assert.Equal(t, start.Add(-24*time.Hour), fireAt)
}

func TestReminderFireTimeInPast(t *testing.T) {
	_, ok := ReminderFireTime("6/6/2020", "08:00")
	assert.False(t, ok, "reminders for past appointments are skipped")

	// Same-day bookings fire less than 24h ahead, so they are skipped too.
	_, ok = ReminderFireTime(models.DateKey(time.Now()), "23:00")
	assert.False(t, ok)
}

func TestReminderFireTimeBadInput(t *testing.T) {
	_, ok := ReminderFireTime("2025-06-06", "08:00")
	assert.False(t, ok)
	_, ok = ReminderFireTime("6/6/2025", "8am")
	assert.False(t, ok)
}

func TestNewReminderTaskPayload(t *testing.T) {
	payload := models.ReminderPayload{
		AppointmentID:  "a-1",
		UserID:         "u-1",
		ConsultantName: "Dr. Rivera",
		Date:           "6/6/2025",
		SlotLabel:      "08:00 - 10:00",
	}
	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, TypeAppointmentReminder, task.Type())

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
