package therapist

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

func (s *DefaultTherapistService) ListCertifications(ctx context.Context, therapistID string) ([]models.Certification, error) {
	return s.Certifications.ListByUser(ctx, therapistID)
}

// AddCertification lists a qualification on the caller's profile.
func (s *DefaultTherapistService) AddCertification(ctx context.Context, actor models.Actor, in models.CertificationInput) (*models.Certification, error) {
	if !actor.Can(models.CanManageCredentials) {
		return nil, fmt.Errorf("only therapists can list certifications: %w", utils.ErrForbidden)
	}
	c := &models.Certification{
		ID:             uuid.New().String(),
		UserID:         actor.ID,
		DegreeName:     strings.TrimSpace(in.DegreeName),
		InstituteName:  strings.TrimSpace(in.InstituteName),
		CompletionYear: strings.TrimSpace(in.CompletionYear),
		Media:          in.Media,
	}
	if c.DegreeName == "" || c.InstituteName == "" || c.CompletionYear == "" {
		return nil, utils.Validationf("degreeName, instituteName and completionYear are required")
	}
	year, err := strconv.Atoi(c.CompletionYear)
	if err != nil || year < 1900 || year > time.Now().Year()+10 {
		return nil, utils.Validationf("completionYear must be a year")
	}
	if c.Media != nil && strings.TrimSpace(c.Media.URL) == "" {
		return nil, utils.Validationf("media.url is required when media is given")
	}
	if err := s.Certifications.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCertification removes one of the caller's own certifications.
func (s *DefaultTherapistService) DeleteCertification(ctx context.Context, actor models.Actor, id string) error {
	if !actor.Can(models.CanManageCredentials) {
		return fmt.Errorf("only therapists can remove certifications: %w", utils.ErrForbidden)
	}
	return s.Certifications.Delete(ctx, id, actor.ID)
}
