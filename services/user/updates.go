package user

import (
	"context"
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"golang.org/x/crypto/bcrypt"
)

// CreateProfile fills in the profile after signup and marks it complete.
// Therapists must set their session charges.
func (s *DefaultUserService) CreateProfile(ctx context.Context, actor models.Actor, in models.ProfileInput) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if u.IsTherapist() && (in.SessionCharges == nil || *in.SessionCharges <= 0) {
		return nil, utils.Validationf("sessionCharges must be greater than zero")
	}
	if in.FirstName == nil || strings.TrimSpace(*in.FirstName) == "" {
		return nil, utils.Validationf("firstName is required")
	}
	applyProfile(u, in)
	u.IsProfileCompleted = true

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, actor models.Actor, in models.ProfileInput) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if in.SessionCharges != nil && *in.SessionCharges <= 0 {
		return nil, utils.Validationf("sessionCharges must be greater than zero")
	}
	applyProfile(u, in)

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func applyProfile(u *models.User, in models.ProfileInput) {
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.CountryCode != nil {
		u.CountryCode = *in.CountryCode
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	if in.ProfilePicture != nil {
		u.ProfilePicture = *in.ProfilePicture
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.IsNotificationEnabled != nil {
		u.IsNotificationEnabled = *in.IsNotificationEnabled
	}
	// therapist-only fields
	if u.IsTherapist() {
		if in.SessionCharges != nil {
			u.SessionCharges = *in.SessionCharges
		}
		if in.Speciality != nil {
			u.Speciality = *in.Speciality
		}
	}
}

func (s *DefaultUserService) UpdateLocation(ctx context.Context, actor models.Actor, in LocationInput) (*models.User, error) {
	if in.Latitude == nil || in.Longitude == nil {
		return nil, utils.Validationf("latitude and longitude are required")
	}
	lat, lng := *in.Latitude, *in.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, utils.Validationf("coordinates out of range")
	}

	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	u.Location = models.NewPoint(lat, lng, strings.TrimSpace(in.Address))
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) ChangePassword(ctx context.Context, actor models.Actor, currentPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect: %w", utils.ErrUnauthorized)
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *DefaultUserService) setPassword(ctx context.Context, u *models.User, newPassword string) error {
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return s.Users.Update(ctx, u)
}
