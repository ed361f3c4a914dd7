package doctorRepo

import (
	"context"
	"errors"

	"medibook/config"
	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a doctor does not exist or is inactive.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository abstracts doctor storage. GetByID is the lookup the booking
// flow depends on; a missing or inactive doctor is reported as ErrNotFound.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	UpdateAvailability(ctx context.Context, id string, template models.AvailabilityTemplate) error
	UpdateFCMToken(ctx context.Context, id, token string) error
	List(ctx context.Context) ([]models.Doctor, error)
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository backed by the
// shared cache client for profile reads.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoDoctorRepo{
		coll:  db.Collection("doctors"),
		cache: utils.GetCacheClient(),
	}
}
