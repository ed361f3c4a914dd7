package patientRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	return nil
}

func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient %s: %w", id, err)
	}
	return &patient, nil
}

func (r *mongoPatientRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	update := bson.M{"$set": bson.M{
		"fcmToken":  token,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update FCM token for patient %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the patients collection.
func (r *mongoPatientRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create patient indexes: %w", err)
	}
	return nil
}
