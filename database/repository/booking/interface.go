// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Transition(ctx context.Context, id string, t models.Transition) (*models.Booking, error)
	DeleteActive(ctx context.Context, id, bookedBy string) error
	SetPaid(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	ListActiveTimeIDs(ctx context.Context, therapistID, date string) ([]string, error)
	ListByClient(ctx context.Context, clientID string, filter models.BookingFilter) ([]models.Booking, error)
	ListByTherapist(ctx context.Context, therapistID string, filter models.BookingFilter) ([]models.Booking, error)
	CountByStatus(ctx context.Context, therapistID string) (map[models.BookingStatus]int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository on the bookings collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}
