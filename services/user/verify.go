package user

import (
	"context"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"go.uber.org/zap"
)

// SendOTP issues a fresh verification code, replacing any pending one.
func (s *DefaultUserService) SendOTP(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.sendCode(ctx, u)
}

// VerifyOTP consumes the code, marks the email verified and signs the user in.
func (s *DefaultUserService) VerifyOTP(ctx context.Context, email, code string) (*AuthResponse, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, utils.Validationf("otp is required")
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.OTPs.Verify(ctx, u.ID, code); err != nil {
		return nil, err
	}
	if !u.IsVerified {
		u.IsVerified = true
		if err := s.Users.Update(ctx, u); err != nil {
			return nil, err
		}
		utils.GetLogger().Info("Email verified", zap.String("userId", u.ID))
	}
	return s.signIn(ctx, u, nil)
}

// ResetPassword sets a new password for a signed-in user without asking
// for the old one.
func (s *DefaultUserService) ResetPassword(ctx context.Context, actor models.Actor, newPassword string) error {
	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	return s.setPassword(ctx, u, newPassword)
}
