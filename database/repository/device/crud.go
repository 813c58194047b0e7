package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoDeviceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "deviceToken", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create device indexes: %w", err)
	}
	return nil
}

// Register binds the token to device.UserID, taking it over from whichever
// account held it before.
func (r *mongoDeviceRepo) Register(ctx context.Context, device *models.Device) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	device.UpdatedAt = time.Now()
	filter := bson.M{"deviceToken": device.DeviceToken}
	if _, err := r.coll.ReplaceOne(ctx, filter, device, options.Replace().SetUpsert(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("device registered concurrently: %w", utils.ErrConflict)
		}
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

// Remove unlinks a token from userID. Tokens of other accounts are untouched.
func (r *mongoDeviceRepo) Remove(ctx context.Context, userID, deviceToken string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "deviceToken": deviceToken})
	if err != nil {
		return fmt.Errorf("failed to remove device: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("device: %w", utils.ErrNotFound)
	}
	return nil
}

func (r *mongoDeviceRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete devices of %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
