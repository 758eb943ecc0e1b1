package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"gencare/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// NewReminderTask builds the asynq task that fires an appointment reminder
// at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderFireTime computes when the reminder for an appointment should fire:
// 24 hours before the slot starts. The date is in DateKey form
// (day/month/year, unpadded) and the start time is "HH:MM" from the slot
// catalog. It returns false when the fire time has already passed or the
// inputs do not parse.
func ReminderFireTime(dateKey, startTime string) (time.Time, bool) {
	start, err := time.ParseInLocation("2/1/2006 15:04", fmt.Sprintf("%s %s", dateKey, startTime), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	fireAt := start.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}
