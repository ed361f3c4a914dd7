package doctorRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	doctorCacheKeyPrefix = "doctor:"
	doctorCacheTTL       = 10 * time.Minute
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	doctor.Active = true
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

// GetByID serves from the Redis cache when possible and falls back to Mongo.
// Inactive doctors are treated as not found.
func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	key := doctorCacheKeyPrefix + id
	if cached, err := r.cache.Get(ctx, key).Result(); err == nil {
		var doctor models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctor); err == nil {
			if !doctor.Active {
				return nil, ErrNotFound
			}
			return &doctor, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("doctor cache read failed", zap.String("id", id), zap.Error(err))
	}

	var doctor models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	if !doctor.Active {
		return nil, ErrNotFound
	}

	if data, err := json.Marshal(doctor); err == nil {
		if err := r.cache.Set(ctx, key, data, doctorCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("doctor cache write failed", zap.String("id", id), zap.Error(err))
		}
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) UpdateAvailability(ctx context.Context, id string, template models.AvailabilityTemplate) error {
	update := bson.M{"$set": bson.M{
		"availability": template,
		"updatedAt":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *mongoDoctorRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	update := bson.M{"$set": bson.M{
		"fcmToken":  token,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update FCM token for doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *mongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) invalidate(ctx context.Context, id string) {
	if err := r.cache.Del(ctx, doctorCacheKeyPrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("doctor cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}
