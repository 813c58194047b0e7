package user

import (
	"context"
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

// Review lets a client rate a therapist or a therapist rate a client.
func (s *DefaultUserService) Review(ctx context.Context, actor models.Actor, in models.ReviewInput) (*models.Review, error) {
	if !actor.Can(models.CanReview) {
		return nil, fmt.Errorf("reviews: %w", utils.ErrForbidden)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.Validationf("rating is required and must be between 1 and 5")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return nil, utils.Validationf("subject is required")
	}

	subject, err := s.Users.GetByID(ctx, in.Subject)
	if err != nil {
		return nil, err
	}
	// clients review therapists and therapists review clients
	if subject.IsTherapist() == actor.IsTherapist() {
		return nil, fmt.Errorf("reviewable user %s: %w", in.Subject, utils.ErrNotFound)
	}

	review := &models.Review{
		ID:          uuid.New().String(),
		Author:      actor.ID,
		Subject:     subject.ID,
		SubjectType: subject.UserType,
		Rating:      in.Rating,
		Message:     strings.TrimSpace(in.Message),
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
