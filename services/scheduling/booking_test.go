package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepo) Create(ctx context.Context, d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	return d, nil
}

func (r *fakeDoctorRepo) UpdateAvailability(ctx context.Context, id string, template models.AvailabilityTemplate) error {
	d, ok := r.doctors[id]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	d.Availability = template
	return nil
}

func (r *fakeDoctorRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	d, ok := r.doctors[id]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	d.FCMToken = token
	return nil
}

func (r *fakeDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) EnsureIndexes() error { return nil }

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts []models.Appointment

	// rejectNextInsert simulates the unique index firing for a write that
	// raced in through another process.
	rejectNextInsert bool
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rejectNextInsert {
		r.rejectNextInsert = false
		return appointmentRepo.ErrDuplicateSlot
	}
	for _, a := range r.appts {
		if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Start == appt.Start && !a.Status.IsTerminal() {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			return &appt, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) ListActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.DoctorID != doctorID || a.Date != date {
			continue
		}
		if a.Status == models.StatusCancelled || a.Status == models.StatusNoShow {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Status != models.StatusConfirmed {
			continue
		}
		if a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute).Before(cutoff) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) EnsureIndexes() error { return nil }

type fakeNotifier struct {
	fail          bool
	patientPushes int
	doctorPushes  int
}

func (n *fakeNotifier) SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error {
	n.patientPushes++
	if n.fail {
		return errors.New("push failed")
	}
	return nil
}

func (n *fakeNotifier) SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error {
	n.doctorPushes++
	if n.fail {
		return errors.New("push failed")
	}
	return nil
}

type fakeReminderScheduler struct {
	scheduled []string
}

func (f *fakeReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	f.scheduled = append(f.scheduled, appt.ID)
	return nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *fakeAppointmentRepo, *fakeNotifier, *fakeReminderScheduler) {
	t.Helper()
	doctors := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doc-1": {
			ID:           "doc-1",
			Name:         "Achieng",
			Active:       true,
			Availability: weekdayTemplate(),
		},
	}}
	appts := &fakeAppointmentRepo{}
	notifier := &fakeNotifier{}
	reminders := &fakeReminderScheduler{}
	svc := &DefaultBookingService{
		DoctorRepo:      doctors,
		AppointmentRepo: appts,
		Notifier:        notifier,
		Reminders:       reminders,
	}
	return svc, appts, notifier, reminders
}

// monday returns 2024-01-01 (a Monday) at the given clock time.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestProposeBookingSuccess(t *testing.T) {
	svc, _, notifier, reminders := newTestService(t)

	appt, err := svc.ProposeBooking(context.Background(), models.BookingRequest{
		DoctorID:    "doc-1",
		PatientID:   "pat-1",
		ScheduledAt: monday(9, 0),
		Type:        "checkup",
	})
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, "2024-01-01", appt.Date)
	assert.Equal(t, 540, appt.Start)
	assert.Equal(t, 30, appt.DurationMinutes, "zero duration falls back to the doctor's slot duration")

	assert.Equal(t, 1, notifier.patientPushes)
	assert.Equal(t, 1, notifier.doctorPushes)
	assert.Equal(t, []string{appt.ID}, reminders.scheduled)
}

func TestProposeBookingUnknownDoctor(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ProposeBooking(context.Background(), models.BookingRequest{
		DoctorID:    "nobody",
		PatientID:   "pat-1",
		ScheduledAt: monday(9, 0),
		Type:        "checkup",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestProposeBookingOverlapRejected(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)

	// 09:15 overlaps the existing 09:00-09:30 visit.
	_, err = svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-2", ScheduledAt: monday(9, 15), Type: "checkup",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// 09:30 touches but does not overlap.
	_, err = svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-2", ScheduledAt: monday(9, 30), Type: "checkup",
	})
	assert.NoError(t, err)
}

func TestProposeBookingCancelledSlotReopens(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, models.StatusCancelled)
	require.NoError(t, err)

	second, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-2", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 540, second.Start)
}

func TestProposeBookingDurationBounds(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, duration := range []int{5, 14, 121, 300} {
		_, err := svc.ProposeBooking(ctx, models.BookingRequest{
			DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0),
			DurationMinutes: duration, Type: "checkup",
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}

	appt, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0),
		DurationMinutes: 45, Type: "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 45, appt.DurationMinutes)
}

func TestProposeBookingNotificationFailureDoesNotFailBooking(t *testing.T) {
	svc, _, notifier, _ := newTestService(t)
	notifier.fail = true

	appt, err := svc.ProposeBooking(context.Background(), models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)
}

func TestProposeBookingDuplicateInsertMapsToUnavailable(t *testing.T) {
	svc, appts, _, _ := newTestService(t)
	ctx := context.Background()

	appts.rejectNextInsert = true

	_, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(10, 0), Type: "checkup",
	})
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(ctx, "doc-1", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, slots, 15)
	for _, s := range slots {
		assert.NotEqual(t, 600, s.Start)
	}
}

func TestAvailableSlotsNonWorkDay(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2024-01-06")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots, "non-work days report an empty list, not an error")
}

func TestAvailableSlotsUnknownDoctor(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.AvailableSlots(context.Background(), "nobody", "2024-01-01")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateStatusFlow(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)

	for _, status := range []models.AppointmentStatus{
		models.StatusConfirmed, models.StatusInProgress, models.StatusCompleted,
	} {
		updated, err := svc.UpdateStatus(ctx, appt.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// COMPLETED is terminal.
	_, err = svc.UpdateStatus(ctx, appt.ID, models.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.ProposeBooking(ctx, models.BookingRequest{
		DoctorID: "doc-1", PatientID: "pat-1", ScheduledAt: monday(9, 0), Type: "checkup",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, appt.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
