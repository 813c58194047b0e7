// File: database/repository/availability/crud.go
package availabilityRepo

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

// Upsert replaces the therapist's entry for entry.Day in a single write,
// creating it when absent. The stored id and createdAt survive replacement.
func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, entry *models.AvailabilityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.UpdatedAt = time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = entry.UpdatedAt
	}

	filter := bson.M{"therapistId": entry.TherapistID, "day": entry.Day}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, entry, opts); err != nil {
		// two first-time upserts of the same day race on the unique index
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("availability for %s changed concurrently: %w", entry.Day, utils.ErrConflict)
		}
		return fmt.Errorf("failed to save availability for %s: %w", entry.Day, err)
	}
	return nil
}

// DeleteDaysExcept removes every entry of the therapist whose day is not in keep.
func (r *mongoAvailabilityRepo) DeleteDaysExcept(ctx context.Context, therapistID string, keep []models.Weekday) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	days := make(bson.A, 0, len(keep))
	for _, d := range keep {
		days = append(days, d)
	}
	filter := bson.M{"therapistId": therapistID, "day": bson.M{"$nin": days}}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete stale availability: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteByTherapist(ctx context.Context, therapistID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"therapistId": therapistID}); err != nil {
		return fmt.Errorf("failed to delete availability of %s: %w", therapistID, err)
	}
	return nil
}
