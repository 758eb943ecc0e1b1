package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gencare/models"
	"gencare/services/scheduling"
	"gencare/services/tasks"
	"gencare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDateOutsideWindow rejects commits for dates the session never offered,
// including past dates and dates beyond the candidate window.
var ErrDateOutsideWindow = errors.New("date is outside the session's booking window")

// InitiateSession creates a new booking session for the given consultant,
// assigns it a unique SessionID, and stores it in Redis. It returns the
// session state with the filtered available dates.
func (s *DefaultBookingSessionService) InitiateSession(userID, consultantID string) (*SessionState, error) {
	ctx := context.Background()
	sessionID := uuid.New().String()

	consultant, err := s.ConsultantRepo.GetByID(consultantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consultant: %w", err)
	}

	session := models.BookingSession{
		SessionID:    sessionID,
		UserID:       userID,
		ConsultantID: consultantID,
		Window:       s.Engine.CandidateWindow(time.Now(), s.WindowDays),
		Overlay:      models.NewReservationOverlay(),
		CreatedAt:    time.Now(),
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return s.buildState(session, *consultant), nil
}

// GetAvailability recomputes the available dates and open slots for an
// existing session against the live consultant record and the session's own
// overlay.
func (s *DefaultBookingSessionService) GetAvailability(sessionID string) (*SessionState, error) {
	ctx := context.Background()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	consultant, err := s.ConsultantRepo.GetByID(session.ConsultantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consultant: %w", err)
	}

	return s.buildState(*session, *consultant), nil
}

// ConfirmBooking finalizes a reservation: it re-checks the slot through the
// scheduling engine, commits it to the session overlay, writes the
// appointment back to the store, and schedules a reminder. A SlotConflictError
// from the engine is returned unchanged so the handler can map it to a
// conflict response.
func (s *DefaultBookingSessionService) ConfirmBooking(sessionID, dateKey string, slotID int, contact models.ContactDetails) (*models.Appointment, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// The UI only offers dates from the session window, so anything else is a
	// crafted request.
	if !session.InWindow(dateKey) {
		return nil, ErrDateOutsideWindow
	}
	consultant, err := s.ConsultantRepo.GetByID(session.ConsultantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consultant: %w", err)
	}

	slot, ok := models.SlotByID(slotID)
	if !ok {
		return nil, fmt.Errorf("unknown slot id %d", slotID)
	}

	if err := s.Engine.CommitReservation(*consultant, session.Overlay, dateKey, slotID); err != nil {
		var conflict *scheduling.SlotConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	appointment := models.Appointment{
		ID:             uuid.New().String(),
		UserID:         session.UserID,
		ConsultantID:   consultant.ID,
		ConsultantName: consultant.Name,
		Date:           dateKey,
		SlotID:         slotID,
		SlotLabel:      slot.Label,
		Contact:        contact,
		Status:         "confirmed",
		CreatedAt:      time.Now(),
	}

	if err := s.AppointmentRepo.Create(&appointment); err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}

	// Write the reservation through to the consultant record. The overlay
	// keeps the session consistent until this lands; there is no CAS here, so
	// two sessions racing the same slot are not coordinated.
	if err := s.ConsultantRepo.AddBookedShift(consultant.ID, dateKey, slotID); err != nil {
		logger.Error("failed to write booked shift back to consultant record",
			zap.String("consultantID", consultant.ID),
			zap.String("date", dateKey),
			zap.Int("slot", slotID),
			zap.Error(err),
		)
	}

	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}

	if err := s.NotificationSvc.SendBookingConfirmation(ctx, appointment); err != nil {
		logger.Warn("failed to send booking confirmation", zap.Error(err))
	}
	s.scheduleReminder(appointment, slot)

	return &appointment, nil
}

// CancelSession deletes the session data from the cache. Reservations already
// committed through ConfirmBooking are not rolled back; there is no
// cancellation flow for committed appointments.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()
	if err := cacheClient.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) buildState(session models.BookingSession, consultant models.Consultant) *SessionState {
	available := s.Engine.FilterAvailableDates(session.Window, consultant, session.Overlay)
	dates := make([]models.DateAvailability, 0, len(available))
	for _, dateKey := range available {
		dates = append(dates, models.DateAvailability{
			Date:      dateKey,
			OpenSlots: s.Engine.OpenSlots(consultant, session.Overlay, dateKey),
		})
	}
	return &SessionState{
		SessionID:      session.SessionID,
		ConsultantID:   session.ConsultantID,
		AvailableDates: dates,
	}
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	cacheClient := utils.GetBookingCacheClient()
	sessionData, err := cacheClient.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session models.BookingSession) error {
	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	cacheClient := utils.GetBookingCacheClient()
	if err := cacheClient.Set(ctx, session.SessionID, sessionData, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) scheduleReminder(appointment models.Appointment, slot models.ConsultationSlot) {
	if s.ReminderClient == nil {
		return
	}
	logger := utils.GetLogger()

	fireAt, ok := tasks.ReminderFireTime(appointment.Date, slot.StartTime)
	if !ok {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID:  appointment.ID,
		UserID:         appointment.UserID,
		ConsultantName: appointment.ConsultantName,
		Date:           appointment.Date,
		SlotLabel:      appointment.SlotLabel,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.ReminderClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.Error(err))
	}
}
