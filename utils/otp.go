package utils

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	OTPPrefix      = "otp:"
	OTPTTL         = 10 * time.Minute
	OTPMaxAttempts = 5
)

// OTPStore keeps one pending verification code per user.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client, ttl: OTPTTL}
}

// GenerateOTP returns a uniformly random 6-digit code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue replaces any pending code for userID with a fresh one.
func (s *OTPStore) Issue(ctx context.Context, userID string) (string, error) {
	code, err := GenerateOTP()
	if err != nil {
		return "", err
	}
	key := OTPPrefix + userID
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.HSet(ctx, key, "code", code, "attempts", 0)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}
	return code, nil
}

// Verify consumes the pending code. Wrong guesses count against the code
// and the code is dropped after OTPMaxAttempts of them.
func (s *OTPStore) Verify(ctx context.Context, userID, code string) error {
	key := OTPPrefix + userID
	stored, err := s.client.HGet(ctx, key, "code").Result()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("verification code expired or not issued: %w", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read code: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		attempts, err := s.client.HIncrBy(ctx, key, "attempts", 1).Result()
		if err != nil {
			return fmt.Errorf("failed to count attempt: %w", err)
		}
		if attempts >= OTPMaxAttempts {
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return fmt.Errorf("failed to drop code: %w", err)
			}
			return Validationf("too many wrong codes, request a new one")
		}
		return Validationf("invalid verification code")
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}
	return nil
}

// LogOTPSender writes codes to the log instead of delivering them.
type LogOTPSender struct{}

func (LogOTPSender) SendOTP(ctx context.Context, email, code string) error {
	GetLogger().Info("Verification code issued", zap.String("email", email), zap.String("code", code))
	return nil
}
