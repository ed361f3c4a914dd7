package patientRepo

import (
	"context"
	"errors"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a patient does not exist.
var ErrNotFound = errors.New("patient not found")

// PatientRepository abstracts patient storage.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	EnsureIndexes() error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
