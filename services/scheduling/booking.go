package scheduling

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minDurationMinutes = 15
	maxDurationMinutes = 120
)

// AvailableSlots returns the free candidates for one doctor and date. The
// result is advisory only: the booking path re-runs the conflict check as the
// final authority before anything is persisted.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, doctorID, date string) ([]models.SlotCandidate, error) {
	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	candidates := GenerateSlots(doctor.Availability, date)
	if len(candidates) == 0 {
		return []models.SlotCandidate{}, nil
	}

	existing, err := s.AppointmentRepo.ListActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	return FilterAvailableSlots(candidates, existing), nil
}

// ProposeBooking runs the authoritative booking flow: resolve the doctor,
// settle the effective duration, re-check the proposed interval against every
// active appointment for that day, then persist with status SCHEDULED.
//
// The overlap re-check and the insert run under a per-doctor mutex so two
// concurrent requests for the same doctor cannot both pass the check; the
// unique index in the appointment repository covers bookings arriving through
// other processes.
func (s *DefaultBookingService) ProposeBooking(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	doctor, err := s.DoctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = doctor.Availability.SlotDurationMinutes
	} else if duration < minDurationMinutes || duration > maxDurationMinutes {
		return nil, ErrInvalidDuration
	}

	date := req.ScheduledAt.Format(dateLayout)
	start := req.ScheduledAt.Hour()*60 + req.ScheduledAt.Minute()

	mu := s.lockDoctor(req.DoctorID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.AppointmentRepo.ListActiveByDoctorAndDate(ctx, req.DoctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	if HasConflict(start, duration, existing) {
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		Date:            date,
		Start:           start,
		DurationMinutes: duration,
		ScheduledAt:     req.ScheduledAt,
		Type:            req.Type,
		Notes:           req.Notes,
		Status:          models.StatusScheduled,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	s.notifyBooked(ctx, doctor, appt)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// UpdateStatus applies a lifecycle transition. Cancelling (or marking no-show)
// frees the underlying interval: subsequent conflict checks no longer see it.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if !CanTransition(appt.Status, to) {
		return nil, ErrInvalidTransition
	}
	if err := s.AppointmentRepo.UpdateStatus(ctx, appointmentID, to); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = to
	return appt, nil
}

// notifyBooked pushes a confirmation to both parties. Failures are logged and
// swallowed: a successful booking must never look failed because a push
// bounced.
func (s *DefaultBookingService) notifyBooked(ctx context.Context, doctor *models.Doctor, appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	when := fmt.Sprintf("%s at %s", appt.Date, models.FormatClock(appt.Start))
	data := map[string]string{
		"type":          "appointment_booked",
		"appointmentId": appt.ID,
	}

	if err := s.Notifier.SendPatientPush(ctx, appt.PatientID,
		"Appointment booked",
		fmt.Sprintf("Your appointment with Dr. %s is set for %s.", doctor.Name, when),
		data,
	); err != nil {
		logger.Warn("patient booking push failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	if err := s.Notifier.SendDoctorPush(ctx, appt.DoctorID,
		"New appointment",
		fmt.Sprintf("A patient booked %s (%d min).", when, appt.DurationMinutes),
		data,
	); err != nil {
		logger.Warn("doctor booking push failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
