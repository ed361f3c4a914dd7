package scheduling

import (
	"context"
	"sync"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/notification"
)

// BookingService drives the booking flow: advisory slot listing, the
// authoritative booking check, and appointment lifecycle transitions.
type BookingService interface {
	AvailableSlots(ctx context.Context, doctorID, date string) ([]models.SlotCandidate, error)
	ProposeBooking(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*models.Appointment, error)
}

// ReminderScheduler enqueues a reminder push for a freshly booked
// appointment. Implemented by the asynq-backed worker package; nil disables
// reminders.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	DoctorRepo      doctorRepo.DoctorRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Notifier        notification.NotificationService
	Reminders       ReminderScheduler

	// doctorLocks serializes the check-and-insert window per doctor. The
	// partial unique index on (doctorId, date, start) backstops bookings
	// arriving through other replicas of this process.
	doctorLocks sync.Map
}

func (s *DefaultBookingService) lockDoctor(doctorID string) *sync.Mutex {
	v, _ := s.doctorLocks.LoadOrStore(doctorID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
