// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a booking. A collision on the active slot index means the
// time range is already held for that date.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.HoldsSlot = booking.Status.HoldsSlot()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("time %s on %s: %w", booking.TimeID, booking.Date, utils.ErrSlotAlreadyBooked)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// Transition moves a booking from t.From to t.To in one compare-and-swap
// update. If the booking is no longer in t.From the swap fails.
func (r *mongoBookingRepo) Transition(ctx context.Context, id string, t models.Transition) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":    t.To,
		"holdsSlot": t.To.HoldsSlot(),
		"updatedAt": time.Now(),
	}
	if t.CancelReason != "" {
		set["cancelReason"] = t.CancelReason
		set["cancelBy"] = t.CancelBy
	}

	filter := bson.M{"id": id, "status": t.From}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s is no longer %s: %w", id, t.From, utils.ErrInvalidTransition)
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteActive removes a booking of bookedBy that still holds its slot.
func (r *mongoBookingRepo) DeleteActive(ctx context.Context, id, bookedBy string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "bookedBy": bookedBy, "holdsSlot": true})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("booking %s is no longer active: %w", id, utils.ErrInvalidTransition)
	}
	return nil
}

// SetPaid is idempotent; setting the flag twice is not an error.
func (r *mongoBookingRepo) SetPaid(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isPaid": true, "updatedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every booking where userID is either party.
func (r *mongoBookingRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{bson.M{"bookedBy": userID}, bson.M{"therapistId": userID}}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings of %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
