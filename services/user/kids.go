package user

import (
	"context"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

func (s *DefaultUserService) ListKids(ctx context.Context, actor models.Actor) ([]models.Kid, error) {
	return s.Kids.ListByUser(ctx, actor.ID)
}

func (s *DefaultUserService) AddKid(ctx context.Context, actor models.Actor, in models.KidInput) (*models.Kid, error) {
	kid := &models.Kid{
		ID:       uuid.New().String(),
		User:     actor.ID,
		Name:     strings.TrimSpace(in.Name),
		Age:      strings.TrimSpace(in.Age),
		Summary:  strings.TrimSpace(in.Summary),
		Disorder: strings.TrimSpace(in.Disorder),
	}
	if kid.Name == "" || kid.Age == "" || kid.Summary == "" || kid.Disorder == "" {
		return nil, utils.Validationf("name, age, summary and disorder are required")
	}
	if err := s.Kids.Create(ctx, kid); err != nil {
		return nil, err
	}
	return kid, nil
}

// DeleteKid removes one of the caller's own kids.
func (s *DefaultUserService) DeleteKid(ctx context.Context, actor models.Actor, kidID string) error {
	return s.Kids.Delete(ctx, kidID, actor.ID)
}
