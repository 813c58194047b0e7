package repository

import (
	"context"

	availabilityRepo "doctospeech/database/repository/availability"
	bookingRepo "doctospeech/database/repository/booking"
	certificationRepo "doctospeech/database/repository/certification"
	contentRepo "doctospeech/database/repository/content"
	deviceRepo "doctospeech/database/repository/device"
	kidRepo "doctospeech/database/repository/kid"
	reviewRepo "doctospeech/database/repository/review"
	transactionRepo "doctospeech/database/repository/transaction"
	userRepo "doctospeech/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	UserRepository          = userRepo.UserRepository
	AvailabilityRepository  = availabilityRepo.AvailabilityRepository
	BookingRepository       = bookingRepo.BookingRepository
	TransactionRepository   = transactionRepo.TransactionRepository
	ReviewRepository        = reviewRepo.ReviewRepository
	KidRepository           = kidRepo.KidRepository
	ContentRepository       = contentRepo.ContentRepository
	DeviceRepository        = deviceRepo.DeviceRepository
	CertificationRepository = certificationRepo.CertificationRepository
)

// Repositories groups every collection the API uses.
type Repositories struct {
	Users          UserRepository
	Availability   AvailabilityRepository
	Bookings       BookingRepository
	Transactions   TransactionRepository
	Reviews        ReviewRepository
	Kids           KidRepository
	Content        ContentRepository
	Devices        DeviceRepository
	Certifications CertificationRepository
}

// NewMongoRepositories builds all repositories on db.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:          userRepo.NewMongoUserRepo(db),
		Availability:   availabilityRepo.NewMongoAvailabilityRepo(db),
		Bookings:       bookingRepo.NewMongoBookingRepo(db),
		Transactions:   transactionRepo.NewMongoTransactionRepo(db),
		Reviews:        reviewRepo.NewMongoReviewRepo(db),
		Kids:           kidRepo.NewMongoKidRepo(db),
		Content:        contentRepo.NewMongoContentRepo(db),
		Devices:        deviceRepo.NewMongoDeviceRepo(db),
		Certifications: certificationRepo.NewMongoCertificationRepo(db),
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates the indexes of every collection. The booking
// indexes carry the double-booking guard, so a failure here is fatal.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	for _, repo := range []indexer{r.Users, r.Availability, r.Bookings, r.Transactions, r.Reviews, r.Kids, r.Content, r.Devices, r.Certifications} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
