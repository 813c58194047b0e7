package user

import (
	"context"
	"errors"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials. Unverified accounts get their profile back
// without a token.
func (s *DefaultUserService) Login(ctx context.Context, in LoginInput) (*AuthResponse, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	device, err := deviceFromInput(in.DeviceInput)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", utils.ErrUnauthorized)
	}
	if !u.IsVerified {
		return &AuthResponse{User: u, Message: "Please verify your email"}, nil
	}
	return s.signIn(ctx, u, device)
}

func (s *DefaultUserService) signIn(ctx context.Context, u *models.User, device *models.Device) (*AuthResponse, error) {
	token, err := s.issueToken(u.ID, u.Email, string(u.UserType))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.registerDevice(ctx, u.ID, device); err != nil {
		return nil, err
	}

	msg := "Login successful"
	if !u.IsProfileCompleted {
		msg = "Please complete your profile"
	}
	return &AuthResponse{Token: token, User: u, Message: msg}, nil
}

// Logout revokes the token until it would have expired and unlinks the
// device it was used from, if any.
func (s *DefaultUserService) Logout(ctx context.Context, token, deviceToken string) error {
	claims, err := utils.ValidateToken(s.JWTSecret, token)
	if err != nil {
		return fmt.Errorf("invalid token: %w", utils.ErrUnauthorized)
	}
	if err := s.Tokens.Revoke(ctx, utils.HashToken(token), claims.ExpiresAt); err != nil {
		return err
	}
	if deviceToken == "" {
		return nil
	}
	if err := s.Devices.Remove(ctx, claims.UserID, deviceToken); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.GetLogger().Debug("Device already unlinked", zap.String("userId", claims.UserID))
			return nil
		}
		return err
	}
	return nil
}
