package booking

import (
	"context"
	"time"

	"doctospeech/database/repository"
	"doctospeech/metrics"
	"doctospeech/models"
)

// BookingService is the booking core exposed to the routing layer.
type BookingService interface {
	ResolveAvailability(ctx context.Context, therapistID, date string) (*models.FreeSlots, error)
	CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*models.Booking, error)

	RespondToBooking(ctx context.Context, actor models.Actor, bookingID string, action models.BookingStatus, reason string) (*models.Booking, error)
	TherapistCancelBooking(ctx context.Context, actor models.Actor, bookingID, reason string) (*models.Booking, error)
	MarkCompleted(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID string) error

	ListMyBookings(ctx context.Context, actor models.Actor, filter models.BookingFilter) ([]models.BookingView, error)
	GetBookingDetail(ctx context.Context, actor models.Actor, bookingID string) (*models.BookingView, error)
	ListTransactions(ctx context.Context, actor models.Actor) ([]models.Transaction, error)
	TherapistEarnings(ctx context.Context, actor models.Actor) (*models.Earnings, error)
	TherapistHome(ctx context.Context, actor models.Actor) (*models.TherapistHome, error)
	ClientHome(ctx context.Context, actor models.Actor) (*models.ClientHome, error)

	ConfirmPayment(ctx context.Context, c models.PaymentConfirmation) (*models.Transaction, bool, error)
}

// DefaultBookingService implements BookingService on the Mongo repositories.
type DefaultBookingService struct {
	Users        repository.UserRepository
	Availability repository.AvailabilityRepository
	Bookings     repository.BookingRepository
	Transactions repository.TransactionRepository
	Kids         repository.KidRepository
	Metrics      *metrics.BookingMetrics
	// Now is the service clock; "today" is its UTC calendar date.
	Now func() time.Time
}

func NewBookingService(repos *repository.Repositories, m *metrics.BookingMetrics) *DefaultBookingService {
	return &DefaultBookingService{
		Users:        repos.Users,
		Availability: repos.Availability,
		Bookings:     repos.Bookings,
		Transactions: repos.Transactions,
		Kids:         repos.Kids,
		Metrics:      m,
		Now:          time.Now,
	}
}

func (s *DefaultBookingService) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Format(models.DateLayout)
}
