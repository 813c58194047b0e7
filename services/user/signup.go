package user

import (
	"context"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers an unverified client or therapist and mails a
// verification code. No token is issued until the code is verified.
func (s *DefaultUserService) Signup(ctx context.Context, in SignupInput) (*AuthResponse, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if !in.UserType.Valid() {
		return nil, utils.Validationf("userType must be %s or %s", models.UserTypeClient, models.UserTypeTherapist)
	}
	if err := VerifyPasswordComplexity(in.Password); err != nil {
		return nil, err
	}
	device, err := deviceFromInput(in.DeviceInput)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		UserType:     in.UserType,
		Type:         models.EntitlementFreemium,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	logger := utils.GetLogger().With(zap.String("userId", u.ID))
	logger.Info("User registered", zap.String("userType", string(u.UserType)))

	// The account exists from here on; delivery problems are recoverable
	// through SendOTP.
	if err := s.sendCode(ctx, u); err != nil {
		logger.Warn("Failed to send verification code", zap.Error(err))
	}
	if err := s.registerDevice(ctx, u.ID, device); err != nil {
		logger.Warn("Failed to register device", zap.Error(err))
	}
	return &AuthResponse{User: u, Message: "Verification code sent"}, nil
}

func (s *DefaultUserService) sendCode(ctx context.Context, u *models.User) error {
	code, err := s.OTPs.Issue(ctx, u.ID)
	if err != nil {
		return err
	}
	return s.Sender.SendOTP(ctx, u.Email, code)
}
