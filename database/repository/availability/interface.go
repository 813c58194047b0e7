// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	EnsureIndexes(ctx context.Context) error
	ListByTherapist(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error)
	GetByDay(ctx context.Context, therapistID string, day models.Weekday) (*models.AvailabilityEntry, error)
	FindByTimeID(ctx context.Context, therapistID, timeID string) (*models.AvailabilityEntry, error)
	Upsert(ctx context.Context, entry *models.AvailabilityEntry) error
	DeleteDaysExcept(ctx context.Context, therapistID string, keep []models.Weekday) error
	DeleteByTherapist(ctx context.Context, therapistID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo(db *mongo.Database) AvailabilityRepository {
	return &mongoAvailabilityRepo{coll: db.Collection("availability")}
}
