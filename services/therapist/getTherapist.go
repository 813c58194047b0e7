package therapist

import (
	"context"
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"
)

const directoryLimit = 50

// GetTherapistDetails builds the public page of a therapist.
func (s *DefaultTherapistService) GetTherapistDetails(ctx context.Context, therapistID string) (*models.TherapistDetails, error) {
	user, err := s.Users.GetByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if !user.IsTherapist() {
		return nil, fmt.Errorf("therapist %s: %w", therapistID, utils.ErrNotFound)
	}

	schedule, err := s.GetWeeklySchedule(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.ListBySubject(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	certs, err := s.Certifications.ListByUser(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	details := &models.TherapistDetails{
		Profile:        user.Public(),
		Schedule:       schedule,
		Reviews:        reviews,
		Certifications: certs,
	}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		details.AverageRating = float64(sum) / float64(len(reviews))
	}
	return details, nil
}

// FilterTherapists searches the directory by name and distance.
func (s *DefaultTherapistService) FilterTherapists(ctx context.Context, q models.TherapistQuery) ([]models.PublicProfile, error) {
	q.Name = strings.TrimSpace(q.Name)
	if (q.Lat == nil) != (q.Lng == nil) {
		return nil, utils.Validationf("lat and lng must be given together")
	}
	if q.Lat != nil {
		if *q.Lat < -90 || *q.Lat > 90 || *q.Lng < -180 || *q.Lng > 180 {
			return nil, utils.Validationf("coordinates out of range")
		}
	}
	if q.MaxDistanceKm < 0 {
		return nil, utils.Validationf("maxDistance must not be negative")
	}

	users, err := s.Users.FindTherapists(ctx, q, directoryLimit)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}
