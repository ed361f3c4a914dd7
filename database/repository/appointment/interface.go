package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// ErrDuplicateSlot is returned when the partial unique index rejects an
// insert because an active appointment already occupies the same
// (doctor, date, start). It is the storage-level backstop for the
// check-then-act race in the booking flow.
var ErrDuplicateSlot = errors.New("slot already booked")

// AppointmentRepository abstracts appointment storage.
// ListActiveByDoctorAndDate excludes CANCELLED and NO_SHOW records, which is
// the precondition the conflict checker documents for its callers.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
