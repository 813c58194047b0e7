// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoAvailabilityRepo) ListByTherapist(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"therapistId": therapistID})
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.AvailabilityEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return entries, nil
}

func (r *mongoAvailabilityRepo) GetByDay(ctx context.Context, therapistID string, day models.Weekday) (*models.AvailabilityEntry, error) {
	return r.findOne(ctx, bson.M{"therapistId": therapistID, "day": day})
}

// FindByTimeID returns the entry that currently contains the time range.
func (r *mongoAvailabilityRepo) FindByTimeID(ctx context.Context, therapistID, timeID string) (*models.AvailabilityEntry, error) {
	return r.findOne(ctx, bson.M{"therapistId": therapistID, "times.id": timeID})
}

func (r *mongoAvailabilityRepo) findOne(ctx context.Context, filter bson.M) (*models.AvailabilityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.AvailabilityEntry
	if err := r.coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("availability: %w", utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	return &entry, nil
}
