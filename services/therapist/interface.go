package therapist

import (
	"context"

	"doctospeech/database/repository"
	"doctospeech/models"
)

// TherapistService manages therapist schedules and the public directory.
type TherapistService interface {
	ReplaceWeeklySchedule(ctx context.Context, actor models.Actor, days []models.DayScheduleInput) ([]models.AvailabilityEntry, error)
	GetWeeklySchedule(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error)
	GetTherapistDetails(ctx context.Context, therapistID string) (*models.TherapistDetails, error)
	FilterTherapists(ctx context.Context, q models.TherapistQuery) ([]models.PublicProfile, error)

	ListCertifications(ctx context.Context, therapistID string) ([]models.Certification, error)
	AddCertification(ctx context.Context, actor models.Actor, in models.CertificationInput) (*models.Certification, error)
	DeleteCertification(ctx context.Context, actor models.Actor, id string) error
}

type DefaultTherapistService struct {
	Users          repository.UserRepository
	Availability   repository.AvailabilityRepository
	Reviews        repository.ReviewRepository
	Certifications repository.CertificationRepository
}

func NewTherapistService(repos *repository.Repositories) *DefaultTherapistService {
	return &DefaultTherapistService{
		Users:          repos.Users,
		Availability:   repos.Availability,
		Reviews:        repos.Reviews,
		Certifications: repos.Certifications,
	}
}
