package user

import (
	"context"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, actor models.Actor) (*models.User, error) {
	return s.Users.GetByID(ctx, actor.ID)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.PublicProfile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// DeleteAccount removes the user and everything that references them.
// The user document goes last so a failed cascade can be retried. The
// token the request came with is revoked once the account is gone.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, actor models.Actor, token string) error {
	logger := utils.GetLogger().With(zap.String("userId", actor.ID))

	bookings, err := s.Bookings.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	reviews, err := s.Reviews.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	txs, err := s.Transactions.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	if err := s.Availability.DeleteByTherapist(ctx, actor.ID); err != nil {
		return err
	}
	kids, err := s.Kids.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	devices, err := s.Devices.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	certs, err := s.Certifications.DeleteByUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, actor.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if claims, err := utils.ValidateToken(s.JWTSecret, token); err == nil {
		if err := s.Tokens.Revoke(ctx, utils.HashToken(token), claims.ExpiresAt); err != nil {
			logger.Warn("Failed to revoke token of deleted account", zap.Error(err))
		}
	}

	logger.Info("Account deleted",
		zap.Int64("bookings", bookings),
		zap.Int64("reviews", reviews),
		zap.Int64("transactions", txs),
		zap.Int64("kids", kids),
		zap.Int64("devices", devices),
		zap.Int64("certifications", certs),
	)
	return nil
}
