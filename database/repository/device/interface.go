package deviceRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DeviceRepository interface {
	EnsureIndexes(ctx context.Context) error
	Register(ctx context.Context, device *models.Device) error
	Remove(ctx context.Context, userID, deviceToken string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoDeviceRepo struct {
	coll *mongo.Collection
}

func NewMongoDeviceRepo(db *mongo.Database) DeviceRepository {
	return &mongoDeviceRepo{coll: db.Collection("devices")}
}
